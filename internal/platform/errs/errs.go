package errs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrConnectionFailed marks a unit of work that could not obtain a usable
// database connection. It is fatal to the request and never retried here.
var ErrConnectionFailed = errors.New("database connection failed")

// ErrNotFound marks a lookup by key that yielded no row.
var ErrNotFound = errors.New("not found")

// ValidationError reports caller-supplied input that failed a required-field
// or format check. Nothing was persisted.
type ValidationError struct {
	Missing []string
	Reason  string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return "missing required fields: " + strings.Join(e.Missing, ", ")
	}
	return e.Reason
}

// MissingFields builds a ValidationError for empty required fields.
func MissingFields(fields ...string) error {
	return &ValidationError{Missing: fields}
}

// Invalid builds a ValidationError for a malformed value.
func Invalid(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// PersistenceError wraps a storage-engine failure after the enclosing
// transaction has been rolled back.
type PersistenceError struct {
	Op   string
	Kind PersistenceKind
	Err  error
}

type PersistenceKind int

const (
	KindUnknown PersistenceKind = iota
	KindDuplicateKey
	KindForeignKey
	KindBadFormat
)

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Postgres error classes we care to distinguish. Anything else is KindUnknown.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidDatetime     = "22007"
	pgDatetimeOverflow    = "22008"
	pgInvalidTextRep      = "22P02"
)

// Wrap classifies a raw pgx error into the caller-facing taxonomy.
// pgx.ErrNoRows becomes ErrNotFound; everything else becomes a
// PersistenceError tagged with the violated constraint class.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	kind := KindUnknown
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			kind = KindDuplicateKey
		case pgForeignKeyViolation:
			kind = KindForeignKey
		case pgInvalidDatetime, pgDatetimeOverflow, pgInvalidTextRep:
			kind = KindBadFormat
		}
	}
	return &PersistenceError{Op: op, Kind: kind, Err: err}
}

// IsNotFound reports whether err is a missing-row error.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsValidation reports whether err came from input validation.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
