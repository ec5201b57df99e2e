package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bookloop/lending-service/internal/errs"
	"github.com/bookloop/lending-service/internal/model"
	"github.com/bookloop/lending-service/pkg/auth"
)

const topListSize = 5

func (s *Service) BookStats(ctx context.Context, principal auth.Principal) (model.BookStats, error) {
	if !principal.IsAdmin() {
		return model.BookStats{}, errs.ErrForbidden
	}
	return s.repo.BookStats(ctx)
}

func (s *Service) LoanStats(ctx context.Context, principal auth.Principal) (model.LoanStats, error) {
	if !principal.IsAdmin() {
		return model.LoanStats{}, errs.ErrForbidden
	}
	return s.repo.LoanStats(ctx)
}

// Report aggregates the admin dashboard numbers. Overdue loans are
// flagged first so the persisted counts match the derived statuses.
func (s *Service) Report(ctx context.Context, principal auth.Principal) (model.Report, error) {
	if !principal.IsAdmin() {
		return model.Report{}, errs.ErrForbidden
	}
	if _, err := s.RefreshOverdue(ctx, time.Now().UTC()); err != nil {
		return model.Report{}, err
	}

	var report model.Report
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		stats, err := s.repo.BookStats(ctx)
		report.Books = stats
		return err
	})
	gg.Go(func() error {
		stats, err := s.repo.LoanStats(ctx)
		report.Loans = stats
		return err
	})
	gg.Go(func() error {
		items, err := s.repo.MostBorrowed(ctx, topListSize)
		report.MostBorrowed = items
		return err
	})
	gg.Go(func() error {
		items, err := s.repo.TopContributors(ctx, topListSize)
		report.TopContributors = items
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.Report{}, err
	}
	return report, nil
}
