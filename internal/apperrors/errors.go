package apperrors

import (
	"errors"
	"strings"
)

type Kind string

const (
	KindEmptyInput Kind = "empty_input"
	KindSwap       Kind = "swap"
	KindTransient  Kind = "transient"
	KindRateLimit  Kind = "rate_limit"
	KindAuth       Kind = "auth"
	KindBadRequest Kind = "bad_request"
	KindValidation Kind = "validation"
	KindPersist    Kind = "persist"
)

type Error struct {
	Kind Kind
	// SafeMessage is intended for user-facing output and logs.
	SafeMessage string
	// Cause keeps the original internal error for troubleshooting.
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if msg := strings.TrimSpace(e.SafeMessage); msg != "" {
		return msg
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func defaultSafeMessage(kind Kind) string {
	switch kind {
	case KindEmptyInput:
		return "Please enter text to translate."
	case KindSwap:
		return "Cannot swap languages while the source language is set to auto-detect."
	case KindTransient:
		return "Temporary upstream error. Please try again."
	case KindRateLimit:
		return "Rate limit exceeded. Please try again later."
	case KindAuth:
		return "Authentication failed. Please verify your API key and permissions."
	case KindBadRequest:
		return "Request rejected by upstream API."
	case KindValidation:
		return "Response validation failed."
	case KindPersist:
		return "Failed to save translation history."
	default:
		return "Request failed."
	}
}

func New(kind Kind, safeMessage string, cause error) error {
	msg := strings.TrimSpace(safeMessage)
	if msg == "" {
		msg = defaultSafeMessage(kind)
	}
	return &Error{
		Kind:        kind,
		SafeMessage: msg,
		Cause:       cause,
	}
}

func EmptyInput() error {
	return New(KindEmptyInput, "", nil)
}

func AutoDetectSwap() error {
	return New(KindSwap, "", nil)
}

func Transient(err error) error {
	return New(KindTransient, "", err)
}

func RateLimit(err error) error {
	return New(KindRateLimit, "", err)
}

func Auth(err error) error {
	return New(KindAuth, "", err)
}

func BadRequest(err error) error {
	return New(KindBadRequest, "", err)
}

func Validation(err error) error {
	return New(KindValidation, "", err)
}

func Persist(err error) error {
	return New(KindPersist, "", err)
}

func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return "", false
	}
	return e.Kind, true
}

func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}

// IsRetryable reports whether the operation behind err is worth retrying.
// Transient covers server errors and network issues, RateLimit covers API
// throttling.
func IsRetryable(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == KindTransient || e.Kind == KindRateLimit
}

func IsRateLimit(err error) bool {
	return Is(err, KindRateLimit)
}

// IsUserCorrectable reports whether the user can fix the condition themselves
// (empty input, auto-detect swap) as opposed to an upstream or storage fault.
func IsUserCorrectable(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == KindEmptyInput || e.Kind == KindSwap
}
