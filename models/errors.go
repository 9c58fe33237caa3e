package models

import (
	"fmt"

	"github.com/pkg/errors"
)

type ErrorKind int

const (
	NotFoundError ErrorKind = iota + 1
	ForbiddenError
	ValidationError
	ConflictError
	UnauthorizedError
)

// HandlerError ошибка бизнес-логики, которую можно показать пользователю
type HandlerError struct {
	Kind    ErrorKind
	Message string
}

func (e *HandlerError) Error() string {
	return e.Message
}

func NewNotFound(format string, args ...any) error {
	return &HandlerError{Kind: NotFoundError, Message: fmt.Sprintf(format, args...)}
}

func NewForbidden(format string, args ...any) error {
	return &HandlerError{Kind: ForbiddenError, Message: fmt.Sprintf(format, args...)}
}

func NewValidation(format string, args ...any) error {
	return &HandlerError{Kind: ValidationError, Message: fmt.Sprintf(format, args...)}
}

func NewConflict(format string, args ...any) error {
	return &HandlerError{Kind: ConflictError, Message: fmt.Sprintf(format, args...)}
}

func NewUnauthorized(format string, args ...any) error {
	return &HandlerError{Kind: UnauthorizedError, Message: fmt.Sprintf(format, args...)}
}

func AsHandlerError(err error) (*HandlerError, bool) {
	var herr *HandlerError
	if errors.As(err, &herr) {
		return herr, true
	}
	return nil, false
}

func IsErrorKind(err error, kind ErrorKind) bool {
	herr, ok := AsHandlerError(err)
	return ok && herr.Kind == kind
}
