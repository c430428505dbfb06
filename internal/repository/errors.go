package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrNotFound is wrapped by every repository not-found error.
var ErrNotFound = errors.New("not found")

// Common repository errors
var (
	ErrBoardNotFound         = fmt.Errorf("board %w", ErrNotFound)
	ErrListNotFound          = fmt.Errorf("list %w", ErrNotFound)
	ErrCardNotFound          = fmt.Errorf("card %w", ErrNotFound)
	ErrTeamMemberNotFound    = fmt.Errorf("team member %w", ErrNotFound)
	ErrAssignmentNotFound    = fmt.Errorf("assignment %w", ErrNotFound)
	ErrLabelNotFound         = fmt.Errorf("label %w", ErrNotFound)
	ErrChecklistItemNotFound = fmt.Errorf("checklist item %w", ErrNotFound)
)

// Kind classifies persistence failures.
type Kind int

const (
	KindOther Kind = iota
	KindNotFound
	KindUniqueViolation
	KindForeignKeyViolation
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Classify maps an error returned by a repository to its Kind.
func Classify(err error) Kind {
	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return KindNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return KindUniqueViolation
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return KindForeignKeyViolation
	case errors.As(err, &pgErr):
		switch pgErr.Code {
		case pgUniqueViolation:
			return KindUniqueViolation
		case pgForeignKeyViolation:
			return KindForeignKeyViolation
		}
	}
	return KindOther
}

// Message is the user-facing text for the kind.
func (k Kind) Message() string {
	switch k {
	case KindUniqueViolation:
		return "A record with this information already exists"
	case KindForeignKeyViolation:
		return "Cannot delete this item because it is referenced by other items"
	case KindNotFound:
		return "The requested item was not found"
	default:
		return "A database error occurred"
	}
}

func (k Kind) String() string {
	switch k {
	case KindUniqueViolation:
		return "unique_violation"
	case KindForeignKeyViolation:
		return "foreign_key_violation"
	case KindNotFound:
		return "not_found"
	default:
		return "other"
	}
}

// UserMessage returns the user-facing text for err.
func UserMessage(err error) string {
	return Classify(err).Message()
}
