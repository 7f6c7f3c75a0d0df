package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/dafibh/finai/finai-web/internal/middleware"
	"github.com/dafibh/finai/finai-web/internal/service"
	"github.com/dafibh/finai/finai-web/internal/session"
	"github.com/dafibh/finai/finai-web/internal/testutil"
	"github.com/dafibh/finai/finai-web/internal/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// testApp is the BFF wired against in-memory repositories. It behaves like a
// browser with a cookie jar of one session cookie.
type testApp struct {
	e        *echo.Echo
	summary  *testutil.MockSummaryRepository
	txRepo   *testutil.MockTransactionRepository
	bills    *testutil.MockBillRepository
	goals    *testutil.MockGoalRepository
	learning *testutil.MockLearningRepository
	store    *session.Store
	hub      *websocket.Hub
	cookie   *http.Cookie
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	app := &testApp{
		summary:  testutil.NewMockSummaryRepository(testutil.FakeTotals()),
		txRepo:   testutil.NewMockTransactionRepository(),
		bills:    testutil.NewMockBillRepository(),
		goals:    testutil.NewMockGoalRepository(),
		learning: testutil.NewMockLearningRepository(),
		store:    session.NewStore(time.Hour),
		hub:      websocket.NewHub(),
	}
	t.Cleanup(app.store.Stop)

	logger := zerolog.Nop()
	today := func() time.Time { return time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC) }

	renderer, err := NewRenderer()
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer

	RegisterRoutes(e, Handlers{
		Dashboard:    NewDashboardHandler(service.NewDashboardService(app.summary, app.txRepo, logger)),
		Transactions: NewTransactionHandler(service.NewTransactionsService(app.txRepo, time.UTC, logger), 200, 100),
		Bills:        NewBillHandler(service.NewBillsService(app.bills, today, logger)),
		Goals:        NewGoalHandler(service.NewGoalsService(app.goals, logger)),
		Learning:     NewLearningHandler(service.NewLearningService(app.learning, logger)),
		Advisor:      NewAdvisorHandler(service.NewAdvisorService(logger), app.hub),
		WebSocket:    NewWebSocketHandler(app.hub, nil),
	}, middleware.SessionMiddleware(app.store, time.Hour))

	app.e = e
	return app
}

func (a *testApp) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if a.cookie != nil {
		req.AddCookie(a.cookie)
	}

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			a.cookie = c
		}
	}
	return rec
}

func (a *testApp) get(target string) *httptest.ResponseRecorder {
	return a.do(http.MethodGet, target, nil)
}

func (a *testApp) post(target string, form url.Values) *httptest.ResponseRecorder {
	if form == nil {
		form = url.Values{}
	}
	return a.do(http.MethodPost, target, form)
}
