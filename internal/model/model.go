package model

import (
	"time"
)

type Role string

const (
	RoleMember Role = "MEMBER"
	RoleAdmin  Role = "ADMIN"
)

type BookStatus string

const (
	BookAvailable   BookStatus = "AVAILABLE"
	BookBorrowed    BookStatus = "BORROWED"
	BookMaintenance BookStatus = "MAINTENANCE"
)

type LoanStatus string

const (
	LoanActive   LoanStatus = "ACTIVE"
	LoanOverdue  LoanStatus = "OVERDUE"
	LoanReturned LoanStatus = "RETURNED"
)

// Open reports whether the loan still holds the book.
func (s LoanStatus) Open() bool {
	return s == LoanActive || s == LoanOverdue
}

type User struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Role      Role      `json:"role" db:"role"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Book struct {
	ID            string     `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	Author        string     `json:"author" db:"author"`
	Description   *string    `json:"description,omitempty" db:"description"`
	Category      string     `json:"category" db:"category"`
	CoverImage    *string    `json:"coverImage,omitempty" db:"cover_image"`
	Status        BookStatus `json:"status" db:"status"`
	ContributorID *string    `json:"contributorId,omitempty" db:"contributor_id"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
}

type Loan struct {
	ID         string     `json:"id" db:"id"`
	UserID     string     `json:"userId" db:"user_id"`
	BookID     string     `json:"bookId" db:"book_id"`
	BorrowDate time.Time  `json:"borrowDate" db:"borrow_date"`
	DueDate    time.Time  `json:"dueDate" db:"due_date"`
	ReturnDate *time.Time `json:"returnDate,omitempty" db:"return_date"`
	Status     LoanStatus `json:"status" db:"status"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`

	Book *Book `json:"book,omitempty" db:"-"`
}

// Days carries no validate tag: the rule engine owns the loan period
// bounds and answers with the lending error taxonomy.
type BorrowRequest struct {
	BookID string `json:"bookId" validate:"required"`
	Days   int    `json:"days"`
}

type CreateBookRequest struct {
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"required"`
	CoverImage  string `json:"coverImage" validate:"omitempty,url"`
}

type SignupRequest struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// LoanFilter narrows loan listings. UserID is mandatory for members,
// optional for admins.
type LoanFilter struct {
	UserID string
	Status LoanStatus
}

type BookFilter struct {
	Category string
	Status   BookStatus
	Search   string
}

type RefreshOverdueResponse struct {
	LoanIDs []string `json:"loanIds"`
}

type BookStats struct {
	Total     int `json:"total" db:"total"`
	Available int `json:"available" db:"available"`
	Borrowed  int `json:"borrowed" db:"borrowed"`
}

type LoanStats struct {
	Total    int `json:"total" db:"total"`
	Active   int `json:"active" db:"active"`
	Overdue  int `json:"overdue" db:"overdue"`
	Returned int `json:"returned" db:"returned"`
}

type MostBorrowedBook struct {
	BookID      string `json:"bookId" db:"book_id"`
	Title       string `json:"title" db:"title"`
	Author      string `json:"author" db:"author"`
	BorrowCount int    `json:"borrowCount" db:"borrow_count"`
}

type TopContributor struct {
	UserID            string `json:"userId" db:"user_id"`
	Name              string `json:"name" db:"name"`
	ContributionCount int    `json:"contributionCount" db:"contribution_count"`
}

type Report struct {
	Books           BookStats          `json:"books"`
	Loans           LoanStats          `json:"loans"`
	MostBorrowed    []MostBorrowedBook `json:"mostBorrowed"`
	TopContributors []TopContributor   `json:"topContributors"`
}

// Contribution is a contributed book together with its loan history size.
type Contribution struct {
	Book      Book `json:"book"`
	LoanCount int  `json:"loanCount"`
}
