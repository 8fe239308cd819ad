package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// requester performs JSON requests against one backend.
type requester struct {
	baseURL string
	http    *http.Client
}

func newRequester(baseURL string, hc *http.Client) requester {
	if hc == nil {
		hc = http.DefaultClient
	}
	return requester{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// do sends method path with the given headers and optional JSON body, then
// hands the response to checkResponse. Transport failures are reported as
// ErrUnavailable with the underlying error in the message.
func (r requester) do(ctx context.Context, method, path string, header http.Header, body any, mode decodeMode, out any) error {
	url := r.baseURL + path

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	for k, values := range header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, url, err)
	}

	return checkResponse(resp, mode, out)
}

// mergeHeaders returns base overlaid with extra; extra wins per key.
func mergeHeaders(base, extra http.Header) http.Header {
	h := base.Clone()
	if h == nil {
		h = http.Header{}
	}
	for k, v := range extra {
		h[k] = append([]string(nil), v...)
	}
	return h
}
