//go:build e2e

package e2e_test

import (
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/vyrodovalexey/featured-content/internal/client"
	"github.com/vyrodovalexey/featured-content/internal/model"
	"github.com/vyrodovalexey/featured-content/internal/retry"
)

// Environment variable names for E2E test configuration.
const (
	EnvServerURL = "E2E_SERVER_URL"
)

// Default configuration values.
const (
	DefaultServerURL = "http://localhost:3000"
	DefaultTimeout   = 15 * time.Second
)

// getEnvOrDefault returns the value of the environment variable
// identified by key, or defaultVal if the variable is not set.
func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// e2eServerURL returns the base URL of the server under test.
func e2eServerURL() string {
	return strings.TrimRight(getEnvOrDefault(EnvServerURL, DefaultServerURL), "/")
}

// e2eFeedURL returns the change feed URL of the server under test.
func e2eFeedURL() string {
	return "ws" + strings.TrimPrefix(e2eServerURL(), "http") + "/ws"
}

// skipIfServerUnavailable checks whether the server is reachable
// and skips the test if it is not.
func skipIfServerUnavailable(t *testing.T) {
	t.Helper()

	base := e2eServerURL()
	hc := &http.Client{Timeout: 3 * time.Second}
	resp, err := hc.Get(base + "/health")
	if err != nil {
		t.Skipf("Server unavailable at %s: %v", base, err)
	}
	resp.Body.Close()
}

// newAPIClient returns an API client for the server under test.
func newAPIClient(t *testing.T) *client.Client {
	t.Helper()

	c, err := client.New(e2eServerURL(),
		client.WithHTTPClient(&http.Client{Timeout: DefaultTimeout}),
		client.WithRetry(retry.DefaultConfig()),
	)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return c
}

// newContent returns a complete create payload tagged with name.
func newContent(name string) model.NewContentItem {
	return model.NewContentItem{
		Title:       name,
		Description: "Created during E2E test",
		ImageURL:    "https://placehold.co/600x400?text=e2e",
		LinkURL:     "#e2e",
	}
}

