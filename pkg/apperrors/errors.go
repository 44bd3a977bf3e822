// Package apperrors defines the error taxonomy shared by all services.
//
// Controllers map these to HTTP status codes with Status; service and
// platform code creates them with enough context to identify the failing
// hop (store, topic, downstream app) without leaking transport internals.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError reports an absent cart or order. For cart reads absence is
// recovered locally (empty cart); for order reads it is surfaced to the
// caller as a negative result.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// EmptyCartError reports a checkout attempt against a cart with no items.
// No order is created and no event is published.
type EmptyCartError struct {
	CustomerID string
}

func (e *EmptyCartError) Error() string {
	return fmt.Sprintf("cart for customer %q is empty", e.CustomerID)
}

// ValidationError reports a client-correctable bad field in a request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DownstreamError reports a failed call to the store, the bus, or a remote
// service. Target names the collaborator, Op the operation attempted.
type DownstreamError struct {
	Target string
	Op     string
	Err    error
}

func (e *DownstreamError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Target, e.Op, e.Err)
}

func (e *DownstreamError) Unwrap() error { return e.Err }

// PublicationError reports the inconsistency window where the order was
// persisted but the completion event could not be published. Surfaced
// distinctly from DownstreamError so operators can reconcile (republish).
type PublicationError struct {
	Topic   string
	OrderID string
	Err     error
}

func (e *PublicationError) Error() string {
	return fmt.Sprintf("order %s persisted but publish to %s failed: %v", e.OrderID, e.Topic, e.Err)
}

func (e *PublicationError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a NotFoundError anywhere in its chain.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Status maps an error to the HTTP status code controllers respond with.
func Status(err error) int {
	var (
		nf *NotFoundError
		ec *EmptyCartError
		ve *ValidationError
		de *DownstreamError
		pe *PublicationError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &ec), errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &de), errors.As(err, &pe):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
