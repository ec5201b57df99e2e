package rules_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bookloop/lending-service/internal/errs"
	"github.com/bookloop/lending-service/internal/model"
	"github.com/bookloop/lending-service/internal/rules"
)

func TestDueDate(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	var tests = []struct {
		name    string
		days    int
		want    time.Time
		wantErr error
	}{
		{name: "min", days: 1, want: now.AddDate(0, 0, 1)},
		{name: "week", days: 7, want: now.AddDate(0, 0, 7)},
		{name: "max", days: 14, want: now.AddDate(0, 0, 14)},
		{name: "zero", days: 0, wantErr: errs.ErrInvalidLoanDuration},
		{name: "too long", days: 15, wantErr: errs.ErrInvalidLoanDuration},
		{name: "negative", days: -3, wantErr: errs.ErrInvalidLoanDuration},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			due, err := rules.DueDate(now, tt.days)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, due)
		})
	}
}

func TestDeriveLoanStatus(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	var tests = []struct {
		name string
		loan model.Loan
		want model.LoanStatus
	}{
		{
			name: "active before due date",
			loan: model.Loan{DueDate: now.AddDate(0, 0, 3)},
			want: model.LoanActive,
		},
		{
			name: "active exactly at due date",
			loan: model.Loan{DueDate: now},
			want: model.LoanActive,
		},
		{
			name: "overdue one day past due",
			loan: model.Loan{DueDate: now.AddDate(0, 0, -1)},
			want: model.LoanOverdue,
		},
		{
			name: "returned is terminal even past due",
			loan: model.Loan{
				DueDate:    now.AddDate(0, 0, -5),
				ReturnDate: timePtr(now.AddDate(0, 0, -2)),
			},
			want: model.LoanReturned,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, rules.DeriveLoanStatus(tt.loan, now))
		})
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func TestCanBorrow(t *testing.T) {
	t.Parallel()

	open := []model.Loan{{Status: model.LoanActive}}

	require.True(t, rules.CanBorrow(model.Book{Status: model.BookAvailable}, nil))
	require.False(t, rules.CanBorrow(model.Book{Status: model.BookBorrowed}, open))
	require.False(t, rules.CanBorrow(model.Book{Status: model.BookMaintenance}, nil))
	// status and loan set diverged: either signal alone blocks the borrow
	require.False(t, rules.CanBorrow(model.Book{Status: model.BookAvailable}, open))
	require.False(t, rules.CanBorrow(model.Book{Status: model.BookBorrowed}, nil))
}

func TestCanDeleteBook(t *testing.T) {
	t.Parallel()

	require.True(t, rules.CanDeleteBook(nil))
	require.True(t, rules.CanDeleteBook([]model.Loan{}))
	require.False(t, rules.CanDeleteBook([]model.Loan{{Status: model.LoanOverdue}}))
}
