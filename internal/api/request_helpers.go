package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// maxRequestBodySize bounds request bodies to 1 MiB.
const maxRequestBodySize = 1 << 20

// DecodeJSON decodes the request body into dst, limiting the body size
// and rejecting unknown fields.
func DecodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxRequestBodySize)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}

	return nil
}
