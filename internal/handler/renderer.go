package handler

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"github.com/dafibh/finai/finai-web/internal/view"
	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page template names
const (
	pageDashboard    = "dashboard"
	pageTransactions = "transactions"
	pageBills        = "bills"
	pageConfirm      = "confirm"
	pageGoals        = "goals"
	pageLearning     = "learning"
	pageAdvisor      = "advisor"
)

var pageNames = []string{
	pageDashboard,
	pageTransactions,
	pageBills,
	pageConfirm,
	pageGoals,
	pageLearning,
	pageAdvisor,
}

// pageData is what the layout receives; Body is handed to the page's content block
type pageData struct {
	Active string
	Notice *view.Notice
	Body   interface{}
}

// Renderer renders pages: the shared layout plus one content template each
type Renderer struct {
	pages map[string]*template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

// NewRenderer parses every embedded page template
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render implements echo.Renderer
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// StaticFS returns the embedded static assets rooted at static/
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// render writes a page. Error notices turn the status into 422 so failed
// submissions are distinguishable without parsing the body.
func render(c echo.Context, name, active string, notice *view.Notice, body interface{}) error {
	status := http.StatusOK
	if notice != nil && notice.Level == view.NoticeError {
		status = http.StatusUnprocessableEntity
	}
	return renderStatus(c, status, name, active, notice, body)
}

func renderStatus(c echo.Context, status int, name, active string, notice *view.Notice, body interface{}) error {
	return c.Render(status, name, pageData{Active: active, Notice: notice, Body: body})
}
