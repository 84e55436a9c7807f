package profile

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/go-github/v68/github"
)

// Client is the slice of the GitHub surface the builder needs: the
// repository listing plus raw file access for README guessing.
type Client interface {
	ListRepositories(ctx context.Context, user string) ([]Repository, error)
	FetchRawFile(ctx context.Context, user, repo, ref, path string) (string, error)
}

const defaultRawBaseURL = "https://raw.githubusercontent.com"

// GitHubClient implements Client against the GitHub REST API and the raw
// content host. The token is optional; anonymous requests stay within
// GitHub's unauthenticated rate limits.
type GitHubClient struct {
	api        *github.Client
	http       *http.Client
	rawBaseURL string
}

func NewGitHubClient(token string) *GitHubClient {
	api := github.NewClient(nil)
	if token != "" {
		api = api.WithAuthToken(token)
	}
	return &GitHubClient{
		api: api,
		// raw.githubusercontent has no deadline of its own; bound each fetch
		http:       &http.Client{Timeout: 10 * time.Second},
		rawBaseURL: defaultRawBaseURL,
	}
}

func (c *GitHubClient) ListRepositories(ctx context.Context, user string) ([]Repository, error) {
	opts := &github.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	repos, _, err := c.api.Repositories.ListByUser(ctx, user, opts)
	if err != nil {
		return nil, fmt.Errorf("listing repositories for %s: %w", user, err)
	}

	out := make([]Repository, 0, len(repos))
	for _, r := range repos {
		out = append(out, Repository{
			Name:        r.GetName(),
			URL:         r.GetHTMLURL(),
			Description: r.GetDescription(),
			Language:    r.GetLanguage(),
			Stars:       r.GetStargazersCount(),
			Forks:       r.GetForksCount(),
			Topics:      r.Topics,
			UpdatedAt:   r.GetUpdatedAt().Time,
		})
	}
	return out, nil
}

// FetchRawFile returns the file body, or "" when the file does not exist at
// that ref. Transport failures are returned as errors; the caller decides
// whether they abort anything.
func (c *GitHubClient) FetchRawFile(ctx context.Context, user, repo, ref, path string) (string, error) {
	url := fmt.Sprintf("%s/%s/%s/%s/%s", c.rawBaseURL, user, repo, ref, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building request for %s: %w", url, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, err)
	}
	return string(body), nil
}
