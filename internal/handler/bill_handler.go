package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/dafibh/finai/finai-web/internal/domain"
	"github.com/dafibh/finai/finai-web/internal/service"
	"github.com/dafibh/finai/finai-web/internal/view"
	"github.com/labstack/echo/v4"
)

// BillHandler handles the bills page and the paid/delete actions
type BillHandler struct {
	billsService *service.BillsService
}

// NewBillHandler creates a new BillHandler
func NewBillHandler(billsService *service.BillsService) *BillHandler {
	return &BillHandler{billsService: billsService}
}

// confirmBody is the content of the confirmation page
type confirmBody struct {
	Prompt string
	Action string
	Cancel string
}

// formConfirmer confirms when the request carries confirm=yes, which only the
// confirmation page sends
type formConfirmer struct {
	c echo.Context
}

func (f formConfirmer) Confirm(string) bool {
	return f.c.FormValue("confirm") == "yes"
}

// Show handles GET /bills
func (h *BillHandler) Show(c echo.Context) error {
	sess, err := requireSession(c)
	if err != nil {
		return err
	}

	page := h.billsService.Page(c.Request().Context())
	sess.SetBills(page.Bills)
	return render(c, pageBills, pageBills, page.Notice, page)
}

// Create handles POST /bills
func (h *BillHandler) Create(c echo.Context) error {
	sess, err := requireSession(c)
	if err != nil {
		return err
	}

	var form view.BillForm
	if err := c.Bind(&form); err != nil {
		return NewValidationError(c, "Invalid form", nil)
	}

	page := h.billsService.Create(c.Request().Context(), form, sess.Bills())
	sess.SetBills(page.Bills)
	return render(c, pageBills, pageBills, page.Notice, page)
}

// MarkPaid handles POST /bills/:id/paid
func (h *BillHandler) MarkPaid(c echo.Context) error {
	return h.confirmedAction(c, service.PromptMarkPaid, h.billsService.MarkPaid)
}

// Delete handles POST /bills/:id/delete and DELETE /bills/:id
func (h *BillHandler) Delete(c echo.Context) error {
	return h.confirmedAction(c, service.PromptDeleteBill, h.billsService.Delete)
}

type billAction func(ctx context.Context, id int64, confirmer service.Confirmer, last view.BillsView) (service.BillsPage, error)

func (h *BillHandler) confirmedAction(c echo.Context, prompt string, action billAction) error {
	sess, err := requireSession(c)
	if err != nil {
		return err
	}

	id, ok := parseID(c, "id")
	if !ok {
		return invalidIDError(c, "id")
	}

	page, err := action(c.Request().Context(), id, formConfirmer{c: c}, sess.Bills())
	if errors.Is(err, domain.ErrNotConfirmed) {
		return renderStatus(c, http.StatusOK, pageConfirm, pageBills, nil, confirmBody{
			Prompt: prompt,
			Action: confirmAction(c),
			Cancel: "/bills",
		})
	}
	if err != nil {
		return err
	}

	sess.SetBills(page.Bills)
	return render(c, pageBills, pageBills, page.Notice, page)
}

// confirmAction is where the confirmation form posts back to. HTML forms
// cannot send DELETE, so DELETE /bills/:id confirms through its POST twin.
func confirmAction(c echo.Context) string {
	path := c.Request().URL.Path
	if c.Request().Method == http.MethodDelete {
		return path + "/delete"
	}
	return path
}
