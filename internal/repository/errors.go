package repository

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
)

type Kind int

const (
	KindInfrastructure Kind = iota
	KindValidation
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	default:
		return "infrastructure"
	}
}

// FieldError describes one rejected field of a book.
type FieldError struct {
	Field string
	Rule  string
	Param string
}

// Error is returned by every BookRepository method that fails.
type Error struct {
	Kind   Kind
	Op     string
	Fields []FieldError
	Err    error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

var ErrNotFound = errors.New("book not found")

// KindOf reports the kind of err. Errors that did not come from the
// repository are infrastructure failures.
func KindOf(err error) Kind {
	var rerr *Error
	if errors.As(err, &rerr) {
		return rerr.Kind
	}
	return KindInfrastructure
}

func notFound(op string) error {
	return &Error{Kind: KindNotFound, Op: op, Err: ErrNotFound}
}

func invalid(op string, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &Error{Kind: KindValidation, Op: op, Err: err}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return &Error{Kind: KindValidation, Op: op, Fields: fields, Err: err}
}

// Postgres SQLSTATE codes that mean the input, not the database, is wrong.
var pgValidationCodes = map[string]bool{
	"23502": true, // not_null_violation
	"23514": true, // check_violation
	"22001": true, // string_data_right_truncation
	"22P02": true, // invalid_text_representation
	"22003": true, // numeric_value_out_of_range
}

func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgValidationCodes[pgErr.Code] {
		var fields []FieldError
		if pgErr.ColumnName != "" {
			fields = []FieldError{{Field: pgErr.ColumnName, Rule: pgErr.Code}}
		}
		return &Error{Kind: KindValidation, Op: op, Fields: fields, Err: err}
	}

	return &Error{Kind: KindInfrastructure, Op: op, Err: err}
}
