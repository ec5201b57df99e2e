package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookloop/lending-service/internal/errs"
	"github.com/bookloop/lending-service/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	FindBookWithOpenLoans(ctx context.Context, bookID string) (model.Book, []model.Loan, error)
	CreateLoanAndMarkBorrowed(ctx context.Context, userID, bookID string, now, dueDate time.Time) (model.Loan, error)
	CloseLoanAndMarkAvailable(ctx context.Context, loanID string, now time.Time) (model.Loan, error)
	DeleteBookIfUnloaned(ctx context.Context, bookID string) error
	BulkFlagOverdue(ctx context.Context, now time.Time) ([]model.Loan, error)

	GetLoan(ctx context.Context, loanID string) (model.Loan, error)
	ListLoans(ctx context.Context, filter model.LoanFilter) ([]model.Loan, error)
	GetBook(ctx context.Context, bookID string) (model.Book, error)
	ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	ListContributions(ctx context.Context, userID string) ([]model.Contribution, error)

	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUser(ctx context.Context, id string) (model.User, error)

	BookStats(ctx context.Context) (model.BookStats, error)
	LoanStats(ctx context.Context) (model.LoanStats, error)
	MostBorrowed(ctx context.Context, limit int) ([]model.MostBorrowedBook, error)
	TopContributors(ctx context.Context, limit int) ([]model.TopContributor, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName = `users`
	booksTableName = `books`
	loansTableName = `loans`

	openLoanIndexName = `one_open_loan_per_book`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	bookColumns = []string{"id", "title", "author", "description", "category", "cover_image", "status", "contributor_id", "created_at"}
	loanColumns = []string{"id", "user_id", "book_id", "borrow_date", "due_date", "return_date", "status", "created_at"}
)

// classify maps driver errors onto the service error taxonomy.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return errs.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == openLoanIndexName:
			// the partial index caught a concurrent open loan
			return errs.ErrBookUnavailable
		case pgErr.Code == pgerrcode.UniqueViolation:
			return errs.ErrAlreadyExists
		case pgerrcode.IsConnectionException(pgErr.Code):
			return errs.ErrStoreUnavailable
		}
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, sql.ErrConnDone) {
		return errs.ErrStoreUnavailable
	}
	return err
}

func (r *repository) inTx(ctx context.Context, opts *sql.TxOptions, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, opts)
	if err != nil {
		return errs.ErrStoreUnavailable
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.log.Warn("tx rollback", zap.Error(rbErr))
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return classify(err)
	}
	return nil
}

func (r *repository) FindBookWithOpenLoans(ctx context.Context, bookID string) (model.Book, []model.Loan, error) {
	var (
		book  model.Book
		loans []model.Loan
	)
	err := r.inTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}, func(tx *sqlx.Tx) error {
		q, args, err := qb.Select(bookColumns...).
			From(booksTableName).
			Where(sq.Eq{"id": bookID}).
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &book, q, args...); err != nil {
			return classify(err)
		}

		q, args, err = qb.Select(loanColumns...).
			From(loansTableName).
			Where(sq.Eq{"book_id": bookID}).
			Where(sq.Eq{"status": []model.LoanStatus{model.LoanActive, model.LoanOverdue}}).
			ToSql()
		if err != nil {
			return err
		}
		return classify(tx.SelectContext(ctx, &loans, q, args...))
	})
	if err != nil {
		return model.Book{}, nil, err
	}
	return book, loans, nil
}

// CreateLoanAndMarkBorrowed flips the book to BORROWED and inserts the
// loan in one transaction. The conditional update linearizes concurrent
// borrows: every caller but one sees zero updated rows. The partial
// unique index on open loans backs this up at the loans table itself.
func (r *repository) CreateLoanAndMarkBorrowed(ctx context.Context, userID, bookID string, now, dueDate time.Time) (model.Loan, error) {
	var loan model.Loan
	err := r.inTx(ctx, nil, func(tx *sqlx.Tx) error {
		q := fmt.Sprintf(`update %s set status = $2
		where id = $1 and status = $3`, booksTableName)
		res, err := tx.ExecContext(ctx, q, bookID, model.BookBorrowed, model.BookAvailable)
		if err != nil {
			return classify(err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return classify(err)
		}
		if n == 0 {
			var status model.BookStatus
			if err := tx.GetContext(ctx, &status,
				fmt.Sprintf(`select status from %s where id = $1`, booksTableName), bookID); err != nil {
				return classify(err)
			}
			return errs.ErrBookUnavailable
		}

		q, args, err := qb.Insert(loansTableName).
			Columns("id", "user_id", "book_id", "borrow_date", "due_date", "status").
			Values(uuid.New(), userID, bookID, now, dueDate, model.LoanActive).
			Suffix("returning " + joinColumns(loanColumns)).
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &loan, q, args...); err != nil {
			r.log.Error("CreateLoanAndMarkBorrowed", zap.String("q", q), zap.Any("args", args))
			return classify(err)
		}
		return nil
	})
	if err != nil {
		return model.Loan{}, err
	}
	return loan, nil
}

// CloseLoanAndMarkAvailable sets the return date and frees the book in
// one transaction. A second call on the same loan finds no open row and
// reports ErrAlreadyReturned, so the side effect never double-applies.
func (r *repository) CloseLoanAndMarkAvailable(ctx context.Context, loanID string, now time.Time) (model.Loan, error) {
	var loan model.Loan
	err := r.inTx(ctx, nil, func(tx *sqlx.Tx) error {
		q := fmt.Sprintf(`update %s set status = $2, return_date = $3
		where id = $1 and status in ($4, $5)
		returning %s`, loansTableName, joinColumns(loanColumns))
		err := tx.GetContext(ctx, &loan, q, loanID, model.LoanReturned, now, model.LoanActive, model.LoanOverdue)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				var status model.LoanStatus
				if err := tx.GetContext(ctx, &status,
					fmt.Sprintf(`select status from %s where id = $1`, loansTableName), loanID); err != nil {
					return classify(err)
				}
				return errs.ErrAlreadyReturned
			}
			return classify(err)
		}

		// MAINTENANCE is an admin override and must survive a return
		q = fmt.Sprintf(`update %s set status = $2 where id = $1 and status = $3`, booksTableName)
		_, err = tx.ExecContext(ctx, q, loan.BookID, model.BookAvailable, model.BookBorrowed)
		return classify(err)
	})
	if err != nil {
		return model.Loan{}, err
	}
	return loan, nil
}

// DeleteBookIfUnloaned locks the book row before checking open loans.
// A concurrent borrow takes the same row lock on its conditional
// update, so the two order strictly: a borrow that commits first makes
// the loan check fail with ErrBookBorrowed, a borrow that waits behind
// the delete finds the book gone.
func (r *repository) DeleteBookIfUnloaned(ctx context.Context, bookID string) error {
	return r.inTx(ctx, nil, func(tx *sqlx.Tx) error {
		var status model.BookStatus
		q := fmt.Sprintf(`select status from %s where id = $1 for update`, booksTableName)
		if err := tx.GetContext(ctx, &status, q, bookID); err != nil {
			return classify(err)
		}

		var open bool
		q = fmt.Sprintf(`select exists(
			select 1 from %s where book_id = $1 and status in ($2, $3)
		)`, loansTableName)
		if err := tx.GetContext(ctx, &open, q, bookID, model.LoanActive, model.LoanOverdue); err != nil {
			return classify(err)
		}
		if open {
			return errs.ErrBookBorrowed
		}

		q = fmt.Sprintf(`delete from %s where id = $1`, booksTableName)
		_, err := tx.ExecContext(ctx, q, bookID)
		return classify(err)
	})
}

func (r *repository) BulkFlagOverdue(ctx context.Context, now time.Time) ([]model.Loan, error) {
	q := fmt.Sprintf(`update %s set status = $2
	where status = $3 and due_date < $1
	returning %s`, loansTableName, joinColumns(loanColumns))

	var loans []model.Loan
	if err := r.db.SelectContext(ctx, &loans, q, now, model.LoanOverdue, model.LoanActive); err != nil {
		return nil, classify(err)
	}
	return loans, nil
}

func (r *repository) GetLoan(ctx context.Context, loanID string) (model.Loan, error) {
	q, args, err := qb.Select(loanColumns...).
		From(loansTableName).
		Where(sq.Eq{"id": loanID}).
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	var loan model.Loan
	if err := r.db.GetContext(ctx, &loan, q, args...); err != nil {
		return model.Loan{}, classify(err)
	}
	return loan, nil
}

func (r *repository) ListLoans(ctx context.Context, filter model.LoanFilter) ([]model.Loan, error) {
	q := qb.Select(loanColumns...).
		From(loansTableName).
		OrderBy("borrow_date desc")

	if filter.UserID != "" {
		q = q.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.Status != "" {
		q = q.Where(sq.Eq{"status": filter.Status})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	var loans []model.Loan
	if err := r.db.SelectContext(ctx, &loans, query, args...); err != nil {
		return nil, classify(err)
	}
	return loans, nil
}

func (r *repository) GetBook(ctx context.Context, bookID string) (model.Book, error) {
	q, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": bookID}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		return model.Book{}, classify(err)
	}
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	q := qb.Select(bookColumns...).
		From(booksTableName).
		OrderBy("created_at desc")

	if filter.Category != "" {
		q = q.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Status != "" {
		q = q.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"author": pattern},
		})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, classify(err)
	}
	return books, nil
}

func (r *repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	q, args, err := qb.Insert(booksTableName).
		Columns("id", "title", "author", "description", "category", "cover_image", "status", "contributor_id").
		Values(uuid.New(), book.Title, book.Author, book.Description, book.Category, book.CoverImage, model.BookAvailable, book.ContributorID).
		Suffix("returning " + joinColumns(bookColumns)).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var created model.Book
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", q), zap.Any("args", args))
		return model.Book{}, classify(err)
	}
	return created, nil
}

type contributionRow struct {
	model.Book
	LoanCount int `db:"loan_count"`
}

func (r *repository) ListContributions(ctx context.Context, userID string) ([]model.Contribution, error) {
	q := fmt.Sprintf(`
	select b.*, (select count(*) from %s l where l.book_id = b.id) as loan_count
	from %s b
	where b.contributor_id = $1
	order by b.created_at desc`, loansTableName, booksTableName)

	var rows []contributionRow
	if err := r.db.SelectContext(ctx, &rows, q, userID); err != nil {
		return nil, classify(err)
	}
	items := make([]model.Contribution, 0, len(rows))
	for _, row := range rows {
		items = append(items, model.Contribution{Book: row.Book, LoanCount: row.LoanCount})
	}
	return items, nil
}

func (r *repository) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	q, args, err := qb.Insert(usersTableName).
		Columns("id", "name", "email", "role").
		Values(user.ID, user.Name, user.Email, user.Role).
		Suffix("returning id, name, email, role, created_at").
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var created model.User
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		return model.User{}, classify(err)
	}
	return created, nil
}

func (r *repository) GetUser(ctx context.Context, id string) (model.User, error) {
	q, args, err := qb.Select("id", "name", "email", "role", "created_at").
		From(usersTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		return model.User{}, classify(err)
	}
	return user, nil
}

func (r *repository) BookStats(ctx context.Context) (model.BookStats, error) {
	q := fmt.Sprintf(`
	select count(*) as total,
	       count(*) filter (where status = '%s') as available,
	       count(*) filter (where status = '%s') as borrowed
	from %s`, model.BookAvailable, model.BookBorrowed, booksTableName)

	var stats model.BookStats
	if err := r.db.GetContext(ctx, &stats, q); err != nil {
		return model.BookStats{}, classify(err)
	}
	return stats, nil
}

func (r *repository) LoanStats(ctx context.Context) (model.LoanStats, error) {
	q := fmt.Sprintf(`
	select count(*) as total,
	       count(*) filter (where status = '%s') as active,
	       count(*) filter (where status = '%s') as overdue,
	       count(*) filter (where status = '%s') as returned
	from %s`, model.LoanActive, model.LoanOverdue, model.LoanReturned, loansTableName)

	var stats model.LoanStats
	if err := r.db.GetContext(ctx, &stats, q); err != nil {
		return model.LoanStats{}, classify(err)
	}
	return stats, nil
}

func (r *repository) MostBorrowed(ctx context.Context, limit int) ([]model.MostBorrowedBook, error) {
	q := fmt.Sprintf(`
	select b.id as book_id, b.title, b.author, count(l.id) as borrow_count
	from %s b
	join %s l on l.book_id = b.id
	group by b.id, b.title, b.author, b.created_at
	order by borrow_count desc, b.created_at asc
	limit $1`, booksTableName, loansTableName)

	var items []model.MostBorrowedBook
	if err := r.db.SelectContext(ctx, &items, q, limit); err != nil {
		return nil, classify(err)
	}
	return items, nil
}

func (r *repository) TopContributors(ctx context.Context, limit int) ([]model.TopContributor, error) {
	q := fmt.Sprintf(`
	select u.id as user_id, u.name, count(b.id) as contribution_count
	from %s u
	join %s b on b.contributor_id = u.id
	group by u.id, u.name, u.created_at
	order by contribution_count desc, u.created_at asc
	limit $1`, usersTableName, booksTableName)

	var items []model.TopContributor
	if err := r.db.SelectContext(ctx, &items, q, limit); err != nil {
		return nil, classify(err)
	}
	return items, nil
}

func joinColumns(cols []string) string {
	out := cols[0]
	for _, c := range cols[1:] {
		out += ", " + c
	}
	return out
}
