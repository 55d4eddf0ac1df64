//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const JSONContentType = "application/json; charset=utf-8"

// TerminalHeader tags a request with the POS terminal that sent it.
func TerminalHeader(terminal string) map[string]string {
	return map[string]string{"X-POS-Terminal": terminal}
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

func AssertJSONResponse(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	AssertHeaders(t, w, map[string]string{"Content-Type": JSONContentType})
}
