package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"rsabackend/src/config"
	"rsabackend/src/server"
)

// Test configuration constants
const (
	testKeyBits  = 256 // small modulus keeps key generation fast
	largeKeyBits = 512 // larger modulus for the slow round-trip test
)

// TestFixture represents one message fixture
type TestFixture struct {
	Name        string
	Message     string
	Description string
}

// createTestFixtures generates various message patterns
func createTestFixtures() []TestFixture {
	return []TestFixture{
		{
			Name:        "empty",
			Message:     "",
			Description: "Empty message, zero ciphertext blocks",
		},
		{
			Name:        "small_text",
			Message:     "Hello, World!",
			Description: "Small ASCII content",
		},
		{
			Name:        "single_byte",
			Message:     "x",
			Description: "Shorter than one limb",
		},
		{
			Name:        "unicode_text",
			Message:     "Hello 世界! 🌍 Testing Unicode: αβγδε ñáéíóú",
			Description: "Unicode text with various character sets",
		},
		{
			Name:        "interior_nul",
			Message:     "before\x00after",
			Description: "NUL byte inside the message",
		},
		{
			Name:        "multi_block",
			Message:     "This message is long enough to span several blocks when encrypted under a small test modulus, exercising the split and join paths.",
			Description: "Multiple ciphertext blocks",
		},
	}
}

// newAPIServer starts an in-process HTTP server over the full stack.
func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(server.New(config.Default()).Handler())
	t.Cleanup(ts.Close)
	return ts
}

// postJSON posts a JSON body and decodes the JSON response into out.
func postJSON(t *testing.T, url string, body, out any) int {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshaling request: %v", err)
	}
	rsp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer rsp.Body.Close()

	decodeJSON(t, rsp.Body, out)
	return rsp.StatusCode
}

// getJSON performs a GET and decodes the JSON response into out.
func getJSON(t *testing.T, url string, out any) int {
	t.Helper()

	rsp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer rsp.Body.Close()

	decodeJSON(t, rsp.Body, out)
	return rsp.StatusCode
}

func decodeJSON(t *testing.T, r io.Reader, out any) {
	t.Helper()
	if out == nil {
		return
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading response: %v", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("decoding response %q: %v", data, err)
	}
}
