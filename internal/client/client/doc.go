// Package client contains the client-side building blocks of the catalog CLI.
//
// GRPCClient implements Client over gRPC using the protobuf Struct codec from
// internal/api. A unary interceptor attaches the selected session token as
// "authorization: Bearer <token>" and bounds each call with the configured
// timeout. Status codes are mapped to the sentinel errors in errors.go
// (ErrUnauthorized, ErrUnavailable, ErrNotFound, ErrInvalid, ErrNoMoreData).
//
// InitDatabase opens the local SQLite file holding issued tokens and client
// metadata and applies the embedded goose migrations.
package client
