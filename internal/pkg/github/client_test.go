package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIClient_LatestRelease(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/acme/dashboard/releases/latest", r.URL.Path)
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"tag_name": "v2.1.0",
			"name": "2.1.0",
			"html_url": "https://github.com/acme/dashboard/releases/tag/v2.1.0",
			"body": "Bug fixes"
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	release, err := client.LatestRelease(context.Background(), "acme/dashboard")
	require.NoError(t, err)
	assert.Equal(t, "v2.1.0", release.TagName)
	assert.Equal(t, "https://github.com/acme/dashboard/releases/tag/v2.1.0", release.HTMLURL)
}

func TestAPIClient_LatestRelease_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.LatestRelease(context.Background(), "acme/missing")
	assert.Error(t, err)
}

func TestIsNewer(t *testing.T) {
	t.Parallel()

	cases := []struct {
		tag     string
		current string
		want    bool
	}{
		{"v2.1.0", "2.0.0", true},
		{"2.10.0", "2.9.1", true},
		{"v2.0.0", "2.0.0", false},
		{"1.9.9", "2.0.0", false},
		{"v2.0.0.1", "2.0.0", true},
		{"2.0", "2.0.0", false},
	}
	for _, c := range cases {
		if got := IsNewer(c.tag, c.current); got != c.want {
			t.Errorf("IsNewer(%q, %q) = %v, want %v", c.tag, c.current, got, c.want)
		}
	}
}
