package handler

import (
	"context"
	"time"

	"github.com/bookloop/lending-service/internal/model"
	"github.com/bookloop/lending-service/internal/service"
	"github.com/bookloop/lending-service/pkg/auth"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LendingService interface {
	Borrow(ctx context.Context, principal auth.Principal, req model.BorrowRequest) (model.Loan, error)
	Return(ctx context.Context, principal auth.Principal, loanID string) (model.Loan, error)
	RefreshOverdue(ctx context.Context, now time.Time) ([]model.Loan, error)
	GetLoan(ctx context.Context, principal auth.Principal, loanID string) (model.Loan, error)
	ListLoans(ctx context.Context, principal auth.Principal, filter model.LoanFilter) ([]model.Loan, error)

	Contribute(ctx context.Context, principal auth.Principal, req model.CreateBookRequest) (model.Book, error)
	DeleteContribution(ctx context.Context, principal auth.Principal, bookID string) error
	GetBook(ctx context.Context, bookID string) (model.Book, error)
	ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	MyContributions(ctx context.Context, principal auth.Principal) ([]model.Contribution, error)

	Register(ctx context.Context, req model.SignupRequest) (model.User, error)
	CurrentUser(ctx context.Context, principal auth.Principal) (model.User, error)

	BookStats(ctx context.Context, principal auth.Principal) (model.BookStats, error)
	LoanStats(ctx context.Context, principal auth.Principal) (model.LoanStats, error)
	Report(ctx context.Context, principal auth.Principal) (model.Report, error)
}

var _ LendingService = (*service.Service)(nil)
