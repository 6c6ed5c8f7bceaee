package httpx

import (
	"bytes"
	"io"
	"net/http"
)

// peekBody returns up to limit bytes of the request body and replaces
// r.Body so downstream handlers can still read it in full.
func peekBody(r *http.Request, limit int64) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}

	buf, err := io.ReadAll(io.LimitReader(r.Body, limit))
	if err != nil {
		return nil, err
	}

	r.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(buf), r.Body), r.Body}

	return buf, nil
}
