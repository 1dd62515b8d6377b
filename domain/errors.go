package domain

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	InvalidInputKind              ErrorKind = "invalid_input"
	ConfigurationKind             ErrorKind = "configuration"
	CredentialRejectedKind        ErrorKind = "credential_rejected"
	TransportFailureKind          ErrorKind = "transport_failure"
	MalformedUpstreamResponseKind ErrorKind = "malformed_upstream_response"
	UpstreamStatusKind            ErrorKind = "upstream_status"
	ServiceBusyKind               ErrorKind = "service_busy"
	UnexpectedFailureKind         ErrorKind = "unexpected_failure"
)

// Error is the failure every service operation reports. Detail is safe to show to the caller.
type Error struct {
	Kind   ErrorKind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewInvalidInputError(detail string) *Error {
	return &Error{Kind: InvalidInputKind, Detail: detail}
}

func NewConfigurationError(variable string) *Error {
	return &Error{Kind: ConfigurationKind, Detail: fmt.Sprintf("%s is not configured", variable)}
}

func NewCredentialRejectedError(provider string, err error) *Error {
	return &Error{
		Kind:   CredentialRejectedKind,
		Detail: fmt.Sprintf("the %s API key was rejected, check that it is valid and enabled", provider),
		Err:    err,
	}
}

func NewTransportFailureError(err error) *Error {
	return &Error{Kind: TransportFailureKind, Detail: fmt.Sprintf("could not reach upstream: %v", err), Err: err}
}

func NewMalformedUpstreamResponseError(err error) *Error {
	return &Error{Kind: MalformedUpstreamResponseKind, Detail: fmt.Sprintf("malformed upstream response: %v", err), Err: err}
}

func NewUpstreamStatusError(err error) *Error {
	return &Error{Kind: UpstreamStatusKind, Detail: err.Error(), Err: err}
}

func NewServiceBusyError(err error) *Error {
	return &Error{Kind: ServiceBusyKind, Detail: "too many requests in flight, try again shortly", Err: err}
}

func NewUnexpectedFailureError(detail string, err error) *Error {
	return &Error{Kind: UnexpectedFailureKind, Detail: fmt.Sprintf("%s: %v", detail, err), Err: err}
}

// KindOf reports the kind of err, UnexpectedFailureKind when err is not a *Error.
func KindOf(err error) ErrorKind {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return UnexpectedFailureKind
}

// UpstreamRejectedError means the upstream answered with a non-success status.
type UpstreamRejectedError struct {
	Status int
	Body   string
}

func (e *UpstreamRejectedError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.Status)
}

// TransportFailureError means the upstream could not be reached or did not answer in time.
type TransportFailureError struct {
	Cause error
}

func (e *TransportFailureError) Error() string {
	return e.Cause.Error()
}

func (e *TransportFailureError) Unwrap() error {
	return e.Cause
}

// MalformedResponseError means the upstream answered with success but without the expected payload.
type MalformedResponseError struct {
	Field string
	Err   error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decoding upstream response: %v", e.Err)
	}
	return fmt.Sprintf("missing field %s", e.Field)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
