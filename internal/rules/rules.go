// Package rules holds the availability rule engine: pure decisions
// about borrowing, due dates and loan status derivation. No I/O here.
package rules

import (
	"time"

	"github.com/bookloop/lending-service/internal/errs"
	"github.com/bookloop/lending-service/internal/model"
)

const (
	MinLoanDays = 1
	MaxLoanDays = 14
)

// CanBorrow requires both the book status and the open-loan set to agree.
// Checking both guards against a store update that succeeded only partially.
func CanBorrow(book model.Book, openLoans []model.Loan) bool {
	return book.Status == model.BookAvailable && len(openLoans) == 0
}

// DueDate computes now + days in whole calendar days (UTC).
func DueDate(now time.Time, days int) (time.Time, error) {
	if days < MinLoanDays || days > MaxLoanDays {
		return time.Time{}, errs.ErrInvalidLoanDuration
	}
	return now.UTC().AddDate(0, 0, days), nil
}

// DeriveLoanStatus is the source of truth for a loan's state:
// RETURNED is terminal, otherwise the due date decides.
func DeriveLoanStatus(loan model.Loan, now time.Time) model.LoanStatus {
	switch {
	case loan.ReturnDate != nil:
		return model.LoanReturned
	case now.After(loan.DueDate):
		return model.LoanOverdue
	default:
		return model.LoanActive
	}
}

// CanDeleteBook allows deletion only with no open loans. Who may
// request the deletion is authorization, checked elsewhere.
func CanDeleteBook(openLoans []model.Loan) bool {
	return len(openLoans) == 0
}
