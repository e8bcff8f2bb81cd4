// SPDX-License-Identifier: GPL-3.0-only

package tracking

import "fmt"

// Kind classifies a pipeline failure. Every kind maps to one stable
// HTTP-style code; none trigger retries inside the pipeline.
type Kind string

const (
	KindInvalidFormat Kind = "INVALID_FORMAT"
	KindUnauthorized  Kind = "UNAUTHORIZED"
	KindBlacklisted   Kind = "BLACKLISTED"
	KindNotFound      Kind = "NOT_FOUND"
	KindRateLimited   Kind = "RATE_LIMITED"
	KindInternal      Kind = "INTERNAL"
)

type Error struct {
	Kind    Kind
	Code    int
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func ErrInvalidFormat() *Error {
	return &Error{Kind: KindInvalidFormat, Code: 400, Message: "Invalid phone number format"}
}

func ErrUnauthorized() *Error {
	return &Error{Kind: KindUnauthorized, Code: 401, Message: "Invalid or missing API key"}
}

func ErrBlacklisted() *Error {
	return &Error{Kind: KindBlacklisted, Code: 403, Message: "This number has been reported as spam"}
}

func ErrRateLimited() *Error {
	return &Error{Kind: KindRateLimited, Code: 429, Message: "Rate limit exceeded. Please try again tomorrow."}
}

func ErrInternal(cause error) *Error {
	return &Error{Kind: KindInternal, Code: 500, Message: "Internal server error", cause: cause}
}
