package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewRequest creates a new HTTP request for testing. A string body is sent
// verbatim; anything else is JSON encoded.
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	switch b := body.(type) {
	case nil:
	case string:
		bodyBytes = []byte(b)
	default:
		bodyBytes, _ = json.Marshal(b)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Raw    string
	Body   map[string]interface{}
}

// RecordHTTPResponse records the HTTP response. A JSON response that does not
// decode into an object fails the test.
func RecordHTTPResponse(t testing.TB, w *httptest.ResponseRecorder) RecordResponse {
	t.Helper()
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, err := io.ReadAll(result.Body)
	require.NoError(t, err, "read response body")

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 && strings.HasPrefix(result.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(bodyBytes, &bodyMap), "decode response body: %s", bodyBytes)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Raw:    string(bodyBytes),
		Body:   bodyMap,
	}
}

// Serve runs req through h and records the response.
func Serve(t testing.TB, h http.Handler, req *http.Request) RecordResponse {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return RecordHTTPResponse(t, w)
}

// Data returns the "data" object of an envelope, or nil.
func (rr RecordResponse) Data() map[string]interface{} {
	data, _ := rr.Body["data"].(map[string]interface{})
	return data
}
