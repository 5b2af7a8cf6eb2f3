package models

import (
	"errors"
	"fmt"
	"strings"
)

/* NotFoundError */

var ErrNotFound = errors.New("not found")

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func (*NotFoundError) Unwrap() error {
	return ErrNotFound
}

func NewNotFoundError(resource string) error {
	return &NotFoundError{Resource: resource}
}

/* BadRequestError */

var ErrBadRequest = errors.New("bad request")

type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("bad request: %s", e.Message)
}

func (*BadRequestError) Unwrap() error {
	return ErrBadRequest
}

func NewBadRequestError(message string) error {
	return &BadRequestError{Message: message}
}

/* UnsupportedMediaError */

var ErrUnsupportedMedia = errors.New("unsupported media")

type UnsupportedMediaError struct {
	Format    string
	Supported []string
}

func (e *UnsupportedMediaError) Error() string {
	return fmt.Sprintf(
		"unsupported file format %q. supported formats: %s",
		e.Format,
		strings.Join(e.Supported, ", "),
	)
}

func (*UnsupportedMediaError) Unwrap() error {
	return ErrUnsupportedMedia
}

func NewUnsupportedMediaError(format string, supported []string) error {
	return &UnsupportedMediaError{Format: format, Supported: supported}
}
