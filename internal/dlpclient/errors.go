package dlpclient

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNotConfigured is returned by Run when Configure has not succeeded yet.
var ErrNotConfigured = errors.New("dlpclient: info types must be configured before run")

// ErrInvalidContent is returned by Run, before any channel is opened, when
// content is not valid UTF-8.
var ErrInvalidContent = errors.New("dlpclient: content is not valid UTF-8")

// RemoteCallError wraps a failure to open the channel or complete the call.
type RemoteCallError struct {
	Method string     // full RPC method name
	Target string     // service address
	Code   codes.Code // gRPC status code; codes.Unknown for non-status errors
	Err    error
}

func newRemoteCallError(method, target string, err error) *RemoteCallError {
	code := codes.Unknown
	if s, ok := status.FromError(err); ok {
		code = s.Code()
	}
	return &RemoteCallError{Method: method, Target: target, Code: code, Err: err}
}

func (e *RemoteCallError) Error() string {
	return fmt.Sprintf("dlpclient: %s on %s: %v", e.Method, e.Target, e.Err)
}

func (e *RemoteCallError) Unwrap() error { return e.Err }

// GRPCStatus lets status.FromError and status.Code see through the wrapper.
func (e *RemoteCallError) GRPCStatus() *status.Status {
	if s, ok := status.FromError(e.Err); ok {
		return s
	}
	return status.New(e.Code, e.Err.Error())
}
