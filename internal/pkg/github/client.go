package github

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client fetches release metadata from the GitHub REST API.
type Client interface {
	LatestRelease(ctx context.Context, repo string) (*Release, error)
}

// Release mirrors the fields of a GitHub release the update check needs.
type Release struct {
	TagName string `json:"tag_name"`
	Name    string `json:"name"`
	HTMLURL string `json:"html_url"`
	Body    string `json:"body"`
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
}

func NewClient(baseURL string) *APIClient {
	if baseURL == "" {
		baseURL = "https://api.github.com"
	}

	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Accept", "application/vnd.github+json").
		SetTimeout(10 * time.Second)

	return &APIClient{httpClient: restyClient}
}

// LatestRelease returns the latest published release of owner/name.
func (c *APIClient) LatestRelease(ctx context.Context, repo string) (*Release, error) {
	var release Release

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&release).
		Get(fmt.Sprintf("/repos/%s/releases/latest", repo))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest release: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("github api returned status %d for %s", resp.StatusCode(), repo)
	}

	return &release, nil
}

// IsNewer reports whether the release tag names a version newer than current.
// Tags may carry a leading "v". Comparison is numeric per dot-separated part,
// so "2.10.0" is newer than "2.9.1".
func IsNewer(tag, current string) bool {
	latest := parseVersion(tag)
	running := parseVersion(current)

	for i := 0; i < len(latest) || i < len(running); i++ {
		var l, r int
		if i < len(latest) {
			l = latest[i]
		}
		if i < len(running) {
			r = running[i]
		}
		if l != r {
			return l > r
		}
	}
	return false
}

func parseVersion(v string) []int {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	parts := strings.Split(v, ".")
	nums := make([]int, 0, len(parts))
	for _, p := range parts {
		n := 0
		for _, ch := range p {
			if ch < '0' || ch > '9' {
				break
			}
			n = n*10 + int(ch-'0')
		}
		nums = append(nums, n)
	}
	return nums
}
