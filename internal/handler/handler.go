package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/bookloop/lending-service/config"
	"github.com/bookloop/lending-service/internal/errs"
	"github.com/bookloop/lending-service/internal/model"
	"github.com/bookloop/lending-service/pkg/auth"
	"github.com/bookloop/lending-service/pkg/validate"
	_ "github.com/bookloop/lending-service/swagger"
)

type Handler struct {
	lendingSvc LendingService
	log        *zap.Logger
}

func New(lendingSvc LendingService, log *zap.Logger) *Handler {
	return &Handler{
		lendingSvc: lendingSvc,
		log:        log,
	}
}

func (h *Handler) NewRouter(cfg config.Config) *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig(h.log)),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
	)

	// signup is called by the identity provider hook before a token exists
	api.POST("/users", h.Signup)

	authed := api.Group("", authMW(cfg))

	authed.GET("/users/me", h.CurrentUser)

	authed.GET("/books", h.ListBooks)
	authed.GET("/books/:bookId", h.GetBook)
	authed.POST("/books", h.Contribute)
	authed.DELETE("/books/:bookId", h.DeleteContribution)
	authed.GET("/contributions", h.MyContributions)

	authed.POST("/loans", h.Borrow)
	authed.GET("/loans", h.ListLoans)
	authed.GET("/loans/:loanId", h.GetLoan)
	authed.POST("/loans/:loanId/return", h.Return)
	authed.POST("/loans/overdue/refresh", h.RefreshOverdue)

	authed.GET("/stats/books", h.BookStats)
	authed.GET("/stats/loans", h.LoanStats)
	authed.GET("/reports", h.Report)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps the service error taxonomy onto status codes; the
// error text is the caller-facing context.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrAlreadyExists):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrStoreUnavailable):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, errs.ErrBookUnavailable),
		errors.Is(err, errs.ErrInvalidLoanDuration),
		errors.Is(err, errs.ErrAlreadyReturned),
		errors.Is(err, errs.ErrBookBorrowed):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func (h *Handler) Signup(c echo.Context) error {
	var req model.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	user, err := h.lendingSvc.Register(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *Handler) CurrentUser(c echo.Context) error {
	principal, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	user, err := h.lendingSvc.CurrentUser(c.Request().Context(), principal)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) Borrow(c echo.Context) error {
	principal, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.BorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	loan, err := h.lendingSvc.Borrow(c.Request().Context(), principal, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) Return(c echo.Context) error {
	principal, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	loanID := c.Param("loanId")
	if loanID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "loanId is empty")
	}
	loan, err := h.lendingSvc.Return(c.Request().Context(), principal, loanID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) GetLoan(c echo.Context) error {
	principal, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	loan, err := h.lendingSvc.GetLoan(c.Request().Context(), principal, c.Param("loanId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) ListLoans(c echo.Context) error {
	principal, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	filter := model.LoanFilter{
		UserID: c.QueryParam("userId"),
		Status: model.LoanStatus(c.QueryParam("status")),
	}
	loans, err := h.lendingSvc.ListLoans(c.Request().Context(), principal, filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) RefreshOverdue(c echo.Context) error {
	principal, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	if !principal.IsAdmin() {
		return echo.NewHTTPError(http.StatusForbidden, errs.ErrForbidden.Error())
	}
	now := time.Now().UTC()
	if nowParam := c.QueryParam("now"); nowParam != "" {
		if now, err = time.Parse(time.RFC3339, nowParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "now is invalid")
		}
	}
	loans, err := h.lendingSvc.RefreshOverdue(c.Request().Context(), now)
	if err != nil {
		return httpError(err)
	}
	resp := model.RefreshOverdueResponse{LoanIDs: make([]string, 0, len(loans))}
	for _, loan := range loans {
		resp.LoanIDs = append(resp.LoanIDs, loan.ID)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetBook(c echo.Context) error {
	book, err := h.lendingSvc.GetBook(c.Request().Context(), c.Param("bookId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) ListBooks(c echo.Context) error {
	filter := model.BookFilter{
		Category: c.QueryParam("category"),
		Status:   model.BookStatus(c.QueryParam("status")),
		Search:   c.QueryParam("search"),
	}
	books, err := h.lendingSvc.ListBooks(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) Contribute(c echo.Context) error {
	principal, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	book, err := h.lendingSvc.Contribute(c.Request().Context(), principal, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) DeleteContribution(c echo.Context) error {
	principal, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	bookID := c.Param("bookId")
	if bookID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "bookId is empty")
	}
	if err := h.lendingSvc.DeleteContribution(c.Request().Context(), principal, bookID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}

func (h *Handler) MyContributions(c echo.Context) error {
	principal, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	items, err := h.lendingSvc.MyContributions(c.Request().Context(), principal)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) BookStats(c echo.Context) error {
	principal, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	stats, err := h.lendingSvc.BookStats(c.Request().Context(), principal)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) LoanStats(c echo.Context) error {
	principal, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	stats, err := h.lendingSvc.LoanStats(c.Request().Context(), principal)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) Report(c echo.Context) error {
	principal, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	report, err := h.lendingSvc.Report(c.Request().Context(), principal)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, report)
}
