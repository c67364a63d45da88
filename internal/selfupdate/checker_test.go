package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/lamila/fundabuddy/releases/latest", r.URL.Path)
		_, _ = w.Write([]byte(`{"tag_name":"v1.2.0","html_url":"https://example.com/v1.2.0"}`))
	}))
	defer server.Close()

	checker := NewChecker(WithBaseURL(server.URL))

	tests := []struct {
		name    string
		version string
		want    bool
	}{
		{"older", "v1.1.0", true},
		{"equal", "v1.2.0", false},
		{"newer", "v1.3.0", false},
		{"missing v prefix", "1.1.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := checker.Check(context.Background(), &CheckInput{Version: tt.version})
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.UpdateAvailable)
			assert.Equal(t, "v1.2.0", result.LatestVersion)
			assert.Equal(t, "https://example.com/v1.2.0", result.ReleaseURL)
		})
	}

	t.Run("dev build", func(t *testing.T) {
		result, err := checker.Check(context.Background(), &CheckInput{Version: "(devel)"})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})
}

func TestCheckAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	checker := NewChecker(WithBaseURL(server.URL))
	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 403")
}
