//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// PerformRequest encodes body as JSON and serves it through h.
func PerformRequest(t *testing.T, h http.Handler, method, path string, body any, headers ...map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return serve(h, req, headers)
}

// PerformRawRequest sends raw as the body unchanged, for malformed payloads.
func PerformRawRequest(t *testing.T, h http.Handler, method, path, raw string, headers ...map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return serve(h, req, headers)
}

func serve(h http.Handler, req *http.Request, headers []map[string]string) *httptest.ResponseRecorder {
	for _, set := range headers {
		for k, v := range set {
			req.Header.Set(k, v)
		}
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}
