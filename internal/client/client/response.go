package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// maxBodySize caps how much of a response body is read into memory.
const maxBodySize = 4 << 20

type decodeMode int

const (
	// strictJSON: a 2xx body must be valid JSON for the target.
	strictJSON decodeMode = iota
	// lenientJSON: an empty or non-JSON body is treated as {}.
	lenientJSON
)

// checkResponse turns a raw response into either a decoded payload (stored
// in out, which may be nil when the body is irrelevant) or a *ResponseError.
// It always closes the body.
func checkResponse(resp *http.Response, mode decodeMode, out any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newResponseError(resp, body)
	}

	if out == nil {
		return nil
	}

	if len(bytes.TrimSpace(body)) == 0 {
		if mode == lenientJSON {
			return nil
		}
		return fmt.Errorf("empty response body from %s", responseURL(resp))
	}

	if err := json.Unmarshal(body, out); err != nil {
		if mode == lenientJSON {
			return nil
		}
		return fmt.Errorf("decode response from %s: %w", responseURL(resp), err)
	}
	return nil
}

func newResponseError(resp *http.Response, body []byte) *ResponseError {
	return &ResponseError{
		StatusCode: resp.StatusCode,
		Status:     http.StatusText(resp.StatusCode),
		Message:    errorMessage(resp.StatusCode, body),
		Body:       string(body),
		URL:        responseURL(resp),
	}
}

// errorMessage prefers the backend's {"message": "..."} field, then the raw
// text, then a generic "Error <code>".
func errorMessage(code int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" && !json.Valid(body) {
		return text
	}
	return "Error " + strconv.Itoa(code)
}

func responseURL(resp *http.Response) string {
	if resp.Request == nil || resp.Request.URL == nil {
		return ""
	}
	return resp.Request.URL.String()
}
