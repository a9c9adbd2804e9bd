// Package blob holds backup snapshot targets. A target only needs to accept
// a named payload; listing and retrieval stay with the operator's tooling.
package blob

import "context"

type Target interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
}
