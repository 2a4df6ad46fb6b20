//go:build staging

package staging

import (
	"net/http"
	"testing"
)

func TestHealthz(t *testing.T) {
	resp, _ := makeRequest(t, "GET", "/healthz", nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}

func TestMetricsExposed(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/metrics", nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	if len(body) == 0 {
		t.Error("Expected non-empty metrics exposition")
	}
}
