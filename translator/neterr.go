package translator

import (
	"context"
	"errors"
	"fmt"
	"net"
)

type NetworkErrorKind string

const (
	KindTimeout    NetworkErrorKind = "timeout"
	KindParse      NetworkErrorKind = "parse"
	KindConnection NetworkErrorKind = "connection"
)

// NetworkError classifies a failed remote fetch. The orchestrator recovers
// from these locally; they never escape the translate stage.
type NetworkError struct {
	Kind  NetworkErrorKind
	Cause error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s error: %v", e.Kind, e.Cause)
}

func (e *NetworkError) Unwrap() error { return e.Cause }

func parseError(reason string) *NetworkError {
	return &NetworkError{Kind: KindParse, Cause: errors.New(reason)}
}

// classifyFetchError wraps an http.Client failure as a timeout or a plain
// connection error.
func classifyFetchError(err error) *NetworkError {
	var ne net.Error
	if (errors.As(err, &ne) && ne.Timeout()) || errors.Is(err, context.DeadlineExceeded) {
		return &NetworkError{Kind: KindTimeout, Cause: err}
	}
	return &NetworkError{Kind: KindConnection, Cause: err}
}
