package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrEntityNotFound     = errors.New("entity not found")
	ErrUniqueViolation    = errors.New("unique constraint violation")
	ErrForeignKeyViolated = errors.New("referenced entity does not exist")
	ErrInvalidInput       = errors.New("invalid input")
)

// postgres error codes
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// Kind classifies store errors so the callers can react without knowing SQL details.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindInvalid
)

type entity string

const (
	entUser       entity = "user"
	entQuizResult entity = "quiz result"
)

// OpError is returned by every exported store operation.
type OpError struct {
	Op       string
	Kind     Kind
	Entity   string
	EntityID any
	Err      error
}

func (e *OpError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Op)
	sb.WriteString(": ")
	sb.WriteString(e.Entity)

	if e.EntityID != nil {
		fmt.Fprintf(&sb, " [%v]", e.EntityID)
	}

	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())
	return sb.String()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

type opOption func(*OpError)

func withEntityID(id any) opOption {
	return func(e *OpError) {
		e.EntityID = id
	}
}

func newOpError(op string, kind Kind, ent entity, err error, opts ...opOption) *OpError {
	e := &OpError{
		Op:     op,
		Kind:   kind,
		Entity: string(ent),
		Err:    err,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// sqlError wraps err, coming from a query, into an *OpError of the matching Kind.
func sqlError(op string, ent entity, err error, opts ...opOption) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return newOpError(op, KindNotFound, ent, ErrEntityNotFound, opts...)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return newOpError(op, KindConflict, ent,
				fmt.Errorf("%w: %s", ErrUniqueViolation, pgErr.ConstraintName), opts...)
		case codeForeignKeyViolation:
			return newOpError(op, KindInvalid, ent,
				fmt.Errorf("%w: %s", ErrForeignKeyViolated, pgErr.ConstraintName), opts...)
		case codeCheckViolation:
			return newOpError(op, KindInvalid, ent,
				fmt.Errorf("%w: %s", ErrInvalidInput, pgErr.ConstraintName), opts...)
		}
	}

	return newOpError(op, KindInternal, ent, err, opts...)
}

// ErrorKind returns the Kind of a store error, or KindInternal for foreign errors.
func ErrorKind(err error) Kind {
	var opErr *OpError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}
	return KindInternal
}
