// Package apperr berisi taksonomi error yang dipakai service dan controller.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeForbidden    Code = "FORBIDDEN"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeInvalidState Code = "INVALID_STATE"
	CodeConflict     Code = "CONFLICT"
	CodeInternal     Code = "INTERNAL"
)

// Error: kegagalan terklasifikasi. Err menyimpan penyebab asli, hanya untuk log.
type Error struct {
	Code    Code
	Message string
	Fields  map[string]string
	Err     error
	status  int
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// WithStatus mengganti status HTTP untuk error ini saja; kode tetap.
func (e *Error) WithStatus(status int) *Error {
	cp := *e
	cp.status = status
	return &cp
}

// HTTPStatus: override kalau diisi, selain itu status bawaan kode.
func (e *Error) HTTPStatus() int {
	if e.status != 0 {
		return e.status
	}
	return e.Code.Status()
}

// Status memetakan kode ke status HTTP. Conflict dan InvalidState sama-sama 400,
// dibedakan lewat error_code di body.
func (c Code) Status() int {
	switch c {
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInvalidInput, CodeInvalidState, CodeConflict:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

func Unauthorized(message string) *Error { return New(CodeUnauthorized, message) }
func Forbidden(message string) *Error    { return New(CodeForbidden, message) }
func NotFound(message string) *Error     { return New(CodeNotFound, message) }
func InvalidState(message string) *Error { return New(CodeInvalidState, message) }
func Conflict(message string) *Error     { return New(CodeConflict, message) }

func InvalidInput(message string, fields map[string]string) *Error {
	return &Error{Code: CodeInvalidInput, Message: message, Fields: fields}
}

func Internal(message string, err error) *Error {
	return Wrap(CodeInternal, message, err)
}

// CodeOf: kode dari error terklasifikasi, selain itu CodeInternal.
func CodeOf(err error) Code {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeInternal
}

func Is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}
