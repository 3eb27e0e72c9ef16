// Package apperrors holds the error taxonomy shared by the services and the
// HTTP layer. Every failure the core raises is an *Error of one Kind.
package apperrors

import "errors"

type Kind string

const (
	KindCustomerNotFound      Kind = "CUSTOMER_NOT_FOUND"
	KindCustomerAlreadyExists Kind = "CUSTOMER_ALREADY_EXISTS"
	KindPaymentNotFound       Kind = "PAYMENT_NOT_FOUND"
	KindPaymentProcessing     Kind = "PAYMENT_PROCESSING_ERROR"
	KindReversalProcessing    Kind = "REVERSAL_PROCESSING_ERROR"
	KindService               Kind = "SERVICE_ERROR"
	KindValidation            Kind = "VALIDATION_ERROR"
)

// Sentinels for errors.Is. Matching is by Kind only.
var (
	ErrCustomerNotFound      = &Error{Kind: KindCustomerNotFound}
	ErrCustomerAlreadyExists = &Error{Kind: KindCustomerAlreadyExists}
	ErrPaymentNotFound       = &Error{Kind: KindPaymentNotFound}
	ErrPaymentProcessing     = &Error{Kind: KindPaymentProcessing}
	ErrReversalProcessing    = &Error{Kind: KindReversalProcessing}
	ErrService               = &Error{Kind: KindService}
	ErrValidation            = &Error{Kind: KindValidation}
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf reports the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return "", false
}
