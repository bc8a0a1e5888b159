// Package blob models the external photo storage behind a narrow
// upload-and-get-URL capability, the only operation the app needs.
package blob

import (
	"context"
	"io"
)

// Store uploads a named blob and returns a URL that can be stored on an
// entry's image field.
type Store interface {
	Upload(ctx context.Context, name string, r io.Reader) (string, error)
}
