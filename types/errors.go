package types

import (
	"fmt"
)

// Error Rich errors returned by the wallet adapter. Both the code and message fields can be
// individually used to correctly identify an error. Implementations MUST use unique values for both
// fields.
type Error struct {
	// Code is a stable error code. Two errors with the same code are the same kind of failure.
	Code int32 `json:"code"`
	// Message is a short description of the error kind. The message MUST NOT change for a given code.
	// Contextual information belongs in Details.
	Message string `json:"message"`
	// Description allows the implementer to optionally provide generic information about the
	// error kind. It MUST NOT carry information about a particular instantiation of an error.
	Description *string `json:"description,omitempty"`
	// An error is retriable if the same request may succeed if submitted again.
	Retriable bool `json:"retriable"`
	// Details carries request specific context, e.g. the text of the underlying wallet error.
	Details map[string]any `json:"details,omitempty"`

	cause error
}

func (e *Error) Error() string {
	if ctx, ok := e.Details["context"]; ok {
		return fmt.Sprintf("%s: %v", e.Message, ctx)
	}
	return e.Message
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func (e *Error) Unwrap() error {
	return e.cause
}

var (
	ErrInvalidAddress = &Error{
		Code:    12, //nolint
		Message: "Invalid address",
	}
	ErrWalletNotFound = &Error{
		Code:    100, //nolint
		Message: "Wallet extension not found",
	}
	ErrChainNotRegistered = &Error{
		Code:    101, //nolint
		Message: "Chain not registered with wallet",
	}
	ErrEnableFailed = &Error{
		Code:    102, //nolint
		Message: "Wallet enable failed",
	}
	ErrSignerNotFound = &Error{
		Code:    103, //nolint
		Message: "Signer not found",
	}
	ErrInvalidChainConfig = &Error{
		Code:    104, //nolint
		Message: "Invalid chain config",
	}
	ErrChainRegistrationFailed = &Error{
		Code:    105, //nolint
		Message: "Chain registration failed",
	}
	ErrRegistryClosed = &Error{
		Code:    106, //nolint
		Message: "Signer registry closed",
	}
	ErrUnsupportedKeyAlgo = &Error{
		Code:    107, //nolint
		Message: "Unsupported public key algorithm",
	}
)

// WrapErr adds details to the types.Error provided. We use a function
// to do this so that we don't accidentially overrwrite the standard
// errors.
func WrapErr(rErr *Error, err error) *Error {
	newErr := &Error{
		Code:      rErr.Code,
		Message:   rErr.Message,
		Retriable: rErr.Retriable,
		cause:     err,
	}
	if err != nil {
		newErr.Details = map[string]interface{}{
			"context": err.Error(),
		}
	}

	return newErr
}

// WrapErrf is WrapErr with a formatted context message.
func WrapErrf(rErr *Error, format string, args ...any) *Error {
	return WrapErr(rErr, fmt.Errorf(format, args...))
}
