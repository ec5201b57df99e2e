package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookloop/lending-service/internal/errs"
	"github.com/bookloop/lending-service/internal/handler"
	mock_handler "github.com/bookloop/lending-service/internal/handler/mocks"
	"github.com/bookloop/lending-service/internal/model"
	"github.com/bookloop/lending-service/pkg/auth"
	"github.com/bookloop/lending-service/pkg/validate"
)

var (
	member = auth.Principal{ID: "user-1", Name: "Alice", Role: auth.RoleMember}
	admin  = auth.Principal{ID: "admin-1", Name: "Root", Role: auth.RoleAdmin}
)

func withPrincipal(p auth.Principal) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			c.SetRequest(req.WithContext(auth.SetAuthContext(req.Context(), p)))
			return next(c)
		}
	}
}

func TestHandler_Borrow(t *testing.T) {
	t.Parallel()

	borrowDate := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	dueDate := borrowDate.AddDate(0, 0, 7)

	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *mock_handler.MockLendingService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			body: `{"bookId":"book-1","days":7}`,
			mockBehavior: func(r *mock_handler.MockLendingService) {
				r.EXPECT().
					Borrow(gomock.Any(), member, model.BorrowRequest{BookID: "book-1", Days: 7}).
					Return(model.Loan{
						ID:         "loan-1",
						UserID:     member.ID,
						BookID:     "book-1",
						BorrowDate: borrowDate,
						DueDate:    dueDate,
						Status:     model.LoanActive,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":"loan-1","userId":"user-1","bookId":"book-1","borrowDate":"2024-03-01T12:00:00Z","dueDate":"2024-03-08T12:00:00Z","status":"ACTIVE","createdAt":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name: "err. book unavailable",
			body: `{"bookId":"book-1","days":7}`,
			mockBehavior: func(r *mock_handler.MockLendingService) {
				r.EXPECT().
					Borrow(gomock.Any(), member, model.BorrowRequest{BookID: "book-1", Days: 7}).
					Return(model.Loan{}, errs.ErrBookUnavailable)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"book is not available"}`,
			},
			wantErr: true,
		},
		{
			name: "err. invalid duration",
			body: `{"bookId":"book-1","days":15}`,
			mockBehavior: func(r *mock_handler.MockLendingService) {
				r.EXPECT().
					Borrow(gomock.Any(), member, model.BorrowRequest{BookID: "book-1", Days: 15}).
					Return(model.Loan{}, errs.ErrInvalidLoanDuration)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"loan period must be between 1 and 14 days"}`,
			},
			wantErr: true,
		},
		{
			name: "err. zero days",
			body: `{"bookId":"book-1","days":0}`,
			mockBehavior: func(r *mock_handler.MockLendingService) {
				r.EXPECT().
					Borrow(gomock.Any(), member, model.BorrowRequest{BookID: "book-1", Days: 0}).
					Return(model.Loan{}, errs.ErrInvalidLoanDuration)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"loan period must be between 1 and 14 days"}`,
			},
			wantErr: true,
		},
		{
			name: "err. book not found",
			body: `{"bookId":"missing","days":7}`,
			mockBehavior: func(r *mock_handler.MockLendingService) {
				r.EXPECT().
					Borrow(gomock.Any(), member, model.BorrowRequest{BookID: "missing", Days: 7}).
					Return(model.Loan{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. bookId required",
			body:         `{"days":7}`,
			mockBehavior: func(r *mock_handler.MockLendingService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := mock_handler.NewMockLendingService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/loans", h.Borrow, withPrincipal(member))

			r := httptest.NewRequest(http.MethodPost, "/loans", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_Return(t *testing.T) {
	t.Parallel()

	borrowDate := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	returnDate := borrowDate.AddDate(0, 0, 5)

	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *mock_handler.MockLendingService)

	var tests = []struct {
		name         string
		principal    auth.Principal
		loanID       string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name:      "ok",
			principal: member,
			loanID:    "loan-1",
			mockBehavior: func(r *mock_handler.MockLendingService) {
				r.EXPECT().
					Return(gomock.Any(), member, "loan-1").
					Return(model.Loan{
						ID:         "loan-1",
						UserID:     member.ID,
						BookID:     "book-1",
						BorrowDate: borrowDate,
						DueDate:    borrowDate.AddDate(0, 0, 7),
						ReturnDate: &returnDate,
						Status:     model.LoanReturned,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":"loan-1","userId":"user-1","bookId":"book-1","borrowDate":"2024-03-01T12:00:00Z","dueDate":"2024-03-08T12:00:00Z","returnDate":"2024-03-06T12:00:00Z","status":"RETURNED","createdAt":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name:      "admin returns for member",
			principal: admin,
			loanID:    "loan-1",
			mockBehavior: func(r *mock_handler.MockLendingService) {
				r.EXPECT().
					Return(gomock.Any(), admin, "loan-1").
					Return(model.Loan{ID: "loan-1", UserID: member.ID, BookID: "book-1",
						BorrowDate: borrowDate, DueDate: borrowDate.AddDate(0, 0, 7),
						ReturnDate: &returnDate, Status: model.LoanReturned}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
			},
		},
		{
			name:      "err. forbidden",
			principal: member,
			loanID:    "loan-2",
			mockBehavior: func(r *mock_handler.MockLendingService) {
				r.EXPECT().
					Return(gomock.Any(), member, "loan-2").
					Return(model.Loan{}, errs.ErrForbidden)
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"forbidden"}`,
			},
			wantErr: true,
		},
		{
			name:      "err. already returned",
			principal: member,
			loanID:    "loan-1",
			mockBehavior: func(r *mock_handler.MockLendingService) {
				r.EXPECT().
					Return(gomock.Any(), member, "loan-1").
					Return(model.Loan{}, errs.ErrAlreadyReturned)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"loan is already returned"}`,
			},
			wantErr: true,
		},
		{
			name:      "err. not found",
			principal: member,
			loanID:    "missing",
			mockBehavior: func(r *mock_handler.MockLendingService) {
				r.EXPECT().
					Return(gomock.Any(), member, "missing").
					Return(model.Loan{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := mock_handler.NewMockLendingService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/loans/:loanId/return", h.Return, withPrincipal(tt.principal))

			r := httptest.NewRequest(http.MethodPost, "/loans/"+tt.loanID+"/return", http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_RefreshOverdue(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("admin flags overdue loans", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		svc := mock_handler.NewMockLendingService(c)
		h := handler.New(svc, zap.NewExample().Named("test"))

		svc.EXPECT().
			RefreshOverdue(gomock.Any(), now).
			Return([]model.Loan{{ID: "loan-1"}, {ID: "loan-2"}}, nil)

		e := echo.New()
		e.POST("/loans/overdue/refresh", h.RefreshOverdue, withPrincipal(admin))

		r := httptest.NewRequest(http.MethodPost, "/loans/overdue/refresh?now=2024-03-10T00:00:00Z", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, `{"loanIds":["loan-1","loan-2"]}`, strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("member is forbidden", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		svc := mock_handler.NewMockLendingService(c)
		h := handler.New(svc, zap.NewExample().Named("test"))

		e := echo.New()
		e.POST("/loans/overdue/refresh", h.RefreshOverdue, withPrincipal(member))

		r := httptest.NewRequest(http.MethodPost, "/loans/overdue/refresh", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestHandler_DeleteContribution(t *testing.T) {
	t.Parallel()

	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *mock_handler.MockLendingService)

	var tests = []struct {
		name         string
		bookID       string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:   "ok",
			bookID: "book-1",
			mockBehavior: func(r *mock_handler.MockLendingService) {
				r.EXPECT().
					DeleteContribution(gomock.Any(), member, "book-1").
					Return(nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"deleted":true}`,
			},
		},
		{
			name:   "err. currently borrowed",
			bookID: "book-1",
			mockBehavior: func(r *mock_handler.MockLendingService) {
				r.EXPECT().
					DeleteContribution(gomock.Any(), member, "book-1").
					Return(errs.ErrBookBorrowed)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"book is currently borrowed"}`,
			},
		},
		{
			name:   "err. not the contributor",
			bookID: "book-2",
			mockBehavior: func(r *mock_handler.MockLendingService) {
				r.EXPECT().
					DeleteContribution(gomock.Any(), member, "book-2").
					Return(errs.ErrForbidden)
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"forbidden"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := mock_handler.NewMockLendingService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := echo.New()
			e.DELETE("/books/:bookId", h.DeleteContribution, withPrincipal(member))

			r := httptest.NewRequest(http.MethodDelete, "/books/"+tt.bookID, http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
