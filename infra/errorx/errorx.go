// Package errorx carries coded errors across the histogram packages.
//
// Precondition violations are raised with panic(errorx.New(...)) so the panic
// value still carries a code; recoverable conditions are returned as error.
package errorx

import (
	"errors"
	"fmt"

	"histStat/infra/errorx/errCode"
)

type Error struct {
	Code  errCode.ErrCode
	Msg   string
	cause error
}

func New(code errCode.ErrCode, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

func Newf(code errCode.ErrCode, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Wrap 保留原始错误, nil 直接返回 nil
func Wrap(code errCode.ErrCode, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Msg: msg, cause: err}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Msg, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Msg)
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches any *Error with the same code, so errors.Is(err, errorx.New(code, ""))
// works as a code check.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// CodeOf returns the code of the first *Error in err's chain, or UNKNOWN.
func CodeOf(err error) errCode.ErrCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return errCode.UNKNOWN
}

// HasCode reports whether err (or a recovered panic value) carries code.
func HasCode(v any, code errCode.ErrCode) bool {
	err, ok := v.(error)
	if !ok {
		return false
	}
	return CodeOf(err) == code
}
