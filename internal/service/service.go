package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookloop/lending-service/internal/errs"
	"github.com/bookloop/lending-service/internal/model"
	"github.com/bookloop/lending-service/internal/repository"
	"github.com/bookloop/lending-service/internal/rules"
	"github.com/bookloop/lending-service/pkg/auth"
	"github.com/bookloop/lending-service/pkg/kafka"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
	pub  Publisher
}

func NewService(repo repository.Repository, pub Publisher, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
		pub:  pub,
	}
}

// Borrow creates a loan for the principal. The rule engine check is
// deliberately kept even though the store enforces the same invariant:
// a request that fails here never reaches the write path, and a stale
// read that slips through is caught by the atomic store operation.
func (s *Service) Borrow(ctx context.Context, principal auth.Principal, req model.BorrowRequest) (model.Loan, error) {
	now := time.Now().UTC()
	dueDate, err := rules.DueDate(now, req.Days)
	if err != nil {
		return model.Loan{}, err
	}

	book, openLoans, err := s.repo.FindBookWithOpenLoans(ctx, req.BookID)
	if err != nil {
		return model.Loan{}, err
	}
	if !rules.CanBorrow(book, openLoans) {
		return model.Loan{}, errs.ErrBookUnavailable
	}

	loan, err := s.repo.CreateLoanAndMarkBorrowed(ctx, principal.ID, req.BookID, now, dueDate)
	if err != nil {
		return model.Loan{}, err
	}

	book.Status = model.BookBorrowed
	loan.Book = &book

	s.publish(kafka.EventLoanCreated, principal.ID, loan.BookID, loan.ID)
	return loan, nil
}

// Return closes a loan. Only the borrower or an admin may return it.
func (s *Service) Return(ctx context.Context, principal auth.Principal, loanID string) (model.Loan, error) {
	loan, err := s.repo.GetLoan(ctx, loanID)
	if err != nil {
		return model.Loan{}, err
	}
	if !auth.Authorize(principal, loan.UserID) {
		return model.Loan{}, errs.ErrForbidden
	}

	closed, err := s.repo.CloseLoanAndMarkAvailable(ctx, loanID, time.Now().UTC())
	if err != nil {
		return model.Loan{}, err
	}

	s.publish(kafka.EventLoanReturned, principal.ID, closed.BookID, closed.ID)
	return closed, nil
}

// RefreshOverdue persists OVERDUE onto every active loan past its due
// date. Idempotent: re-running only ever moves loans forward.
func (s *Service) RefreshOverdue(ctx context.Context, now time.Time) ([]model.Loan, error) {
	if now.IsZero() {
		now = time.Now().UTC()
	}
	loans, err := s.repo.BulkFlagOverdue(ctx, now)
	if err != nil {
		return nil, err
	}
	for _, loan := range loans {
		s.publish(kafka.EventLoanOverdue, loan.UserID, loan.BookID, loan.ID)
	}
	return loans, nil
}

// Contribute adds a book to the catalog on behalf of the principal.
func (s *Service) Contribute(ctx context.Context, principal auth.Principal, req model.CreateBookRequest) (model.Book, error) {
	book := model.Book{
		Title:         req.Title,
		Author:        req.Author,
		Description:   optional(req.Description),
		Category:      req.Category,
		CoverImage:    optional(req.CoverImage),
		ContributorID: optional(principal.ID),
	}
	created, err := s.repo.CreateBook(ctx, book)
	if err != nil {
		return model.Book{}, err
	}

	s.publish(kafka.EventBookContributed, principal.ID, created.ID, "")
	return created, nil
}

// DeleteContribution removes a contributed book. The precondition is
// checked up front for a precise error, and again inside the atomic
// delete so a concurrent borrow aborts it rather than losing the loan.
func (s *Service) DeleteContribution(ctx context.Context, principal auth.Principal, bookID string) error {
	book, openLoans, err := s.repo.FindBookWithOpenLoans(ctx, bookID)
	if err != nil {
		return err
	}
	var contributorID string
	if book.ContributorID != nil {
		contributorID = *book.ContributorID
	}
	if !auth.Authorize(principal, contributorID) {
		return errs.ErrForbidden
	}
	if !rules.CanDeleteBook(openLoans) {
		return errs.ErrBookBorrowed
	}

	if err := s.repo.DeleteBookIfUnloaned(ctx, bookID); err != nil {
		return err
	}

	s.publish(kafka.EventBookDeleted, principal.ID, bookID, "")
	return nil
}

// GetLoan returns the loan with its derived status and book snapshot.
func (s *Service) GetLoan(ctx context.Context, principal auth.Principal, loanID string) (model.Loan, error) {
	loan, err := s.repo.GetLoan(ctx, loanID)
	if err != nil {
		return model.Loan{}, err
	}
	if !auth.Authorize(principal, loan.UserID) {
		return model.Loan{}, errs.ErrForbidden
	}
	loan.Status = rules.DeriveLoanStatus(loan, time.Now().UTC())

	book, err := s.repo.GetBook(ctx, loan.BookID)
	if err != nil {
		if !errors.Is(err, errs.ErrNotFound) {
			return model.Loan{}, err
		}
		s.log.Warn("loan book snapshot missing", zap.String("bookId", loan.BookID))
		return loan, nil
	}
	loan.Book = &book
	return loan, nil
}

// ListLoans applies the derived status to every row, so callers never
// see a stale persisted OVERDUE between sweeper runs.
func (s *Service) ListLoans(ctx context.Context, principal auth.Principal, filter model.LoanFilter) ([]model.Loan, error) {
	if !principal.IsAdmin() {
		filter.UserID = principal.ID
	}
	loans, err := s.repo.ListLoans(ctx, filter)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	for i := range loans {
		loans[i].Status = rules.DeriveLoanStatus(loans[i], now)
	}
	return loans, nil
}

func (s *Service) GetBook(ctx context.Context, bookID string) (model.Book, error) {
	return s.repo.GetBook(ctx, bookID)
}

func (s *Service) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	return s.repo.ListBooks(ctx, filter)
}

func (s *Service) MyContributions(ctx context.Context, principal auth.Principal) ([]model.Contribution, error) {
	return s.repo.ListContributions(ctx, principal.ID)
}

// Register creates the user row on first signup. The identity provider
// owns authentication; we only mirror the principal it issued.
func (s *Service) Register(ctx context.Context, req model.SignupRequest) (model.User, error) {
	return s.repo.CreateUser(ctx, model.User{
		ID:    req.ID,
		Name:  req.Name,
		Email: req.Email,
		Role:  model.RoleMember,
	})
}

func (s *Service) CurrentUser(ctx context.Context, principal auth.Principal) (model.User, error) {
	return s.repo.GetUser(ctx, principal.ID)
}

func (s *Service) publish(eventType kafka.EventType, userID, bookID, loanID string) {
	if s.pub == nil {
		return
	}
	event := kafka.EventLending{
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		UserID:    userID,
		BookID:    bookID,
		LoanID:    loanID,
	}
	if err := s.pub.Publish(event); err != nil {
		s.log.Warn("publish lending event", zap.String("type", string(eventType)), zap.Error(err))
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
