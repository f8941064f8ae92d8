package rpc

import "errors"

// ErrDecode wraps input-decoding failures, which propagate as JSON-RPC
// errors; ErrUnknownFunction accompanies the bare ["oops"] result, which the
// transport returns as a plain result rather than a JSON-RPC error.
// ErrDomain and ErrTransport are not returned by any code path in this
// package: failures from the witness kernel are wrapped without ErrDomain
// (they still surface as JSON-RPC errors), and a malformed
// resolve_foreign_call parameter yields the bare ["Bad query"] result with
// no error value.
var (
	ErrDecode          = errors.New("rpc: decode error")
	ErrDomain          = errors.New("rpc: domain error")
	ErrUnknownFunction = errors.New("rpc: unknown function")
	ErrTransport       = errors.New("rpc: transport error")
)
