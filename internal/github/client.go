// Package github retrieves repository file contents through the GitHub
// REST API.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"coderev/internal/logger"
	"coderev/internal/model"
)

const (
	defaultAPIURL = "https://api.github.com"

	// Files above this size are skipped rather than sent to the model.
	maxFileSize = 256 * 1024

	fetchConcurrency = 8
)

// ErrRepoNotFound indicates the repository or ref does not exist, or
// the token cannot see it.
var ErrRepoNotFound = errors.New("repository not found")

// Client is a read-only GitHub REST API client.
type Client struct {
	token   string
	apiURL  string
	httpCli *http.Client
}

// NewClient creates a client. An empty apiURL uses the public API and
// a nil httpClient gets a sane default timeout.
func NewClient(token, apiURL string, httpClient *http.Client) *Client {
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{
		token:   token,
		apiURL:  strings.TrimRight(apiURL, "/"),
		httpCli: httpClient,
	}
}

type treeEntry struct {
	Path string `json:"path"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}

type treeResponse struct {
	Tree      []treeEntry `json:"tree"`
	Truncated bool        `json:"truncated"`
}

// FetchRepoFiles returns the text files of a repository at the given
// ref, in tree order. Binary and oversized files are skipped.
func (c *Client) FetchRepoFiles(ctx context.Context, owner, repo, ref string) ([]model.RepoFile, error) {
	tree, err := c.fetchTree(ctx, owner, repo, ref)
	if err != nil {
		return nil, err
	}

	blobs := make([]treeEntry, 0, len(tree.Tree))
	for _, entry := range tree.Tree {
		if entry.Type != "blob" {
			continue
		}
		if entry.Size > maxFileSize {
			logger.Debug("skipping oversized file", "path", entry.Path, "size", entry.Size)
			continue
		}
		blobs = append(blobs, entry)
	}
	if tree.Truncated {
		logger.Warn("repository tree truncated by GitHub", "repo", owner+"/"+repo)
	}

	contents := make([]string, len(blobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i, entry := range blobs {
		g.Go(func() error {
			content, err := c.fetchRawContent(gctx, owner, repo, entry.Path, ref)
			if err != nil {
				return err
			}
			contents[i] = content
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	files := make([]model.RepoFile, 0, len(blobs))
	for i, entry := range blobs {
		if !utf8.ValidString(contents[i]) {
			logger.Debug("skipping non-text file", "path", entry.Path)
			continue
		}
		files = append(files, model.RepoFile{Path: entry.Path, Content: contents[i]})
	}
	return files, nil
}

func (c *Client) fetchTree(ctx context.Context, owner, repo, ref string) (*treeResponse, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/git/trees/%s?recursive=1",
		c.apiURL, url.PathEscape(owner), url.PathEscape(repo), url.PathEscape(ref))

	body, status, err := c.get(ctx, endpoint, "application/vnd.github.v3+json")
	if err != nil {
		return nil, fmt.Errorf("fetching repository tree: %w", err)
	}
	switch {
	case status == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s/%s@%s", ErrRepoNotFound, owner, repo, ref)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return nil, fmt.Errorf("github authentication failed (status %d): %s", status, string(body))
	case status != http.StatusOK:
		return nil, fmt.Errorf("github API error (status %d): %s", status, string(body))
	}

	var tree treeResponse
	if err := json.Unmarshal(body, &tree); err != nil {
		return nil, fmt.Errorf("parsing tree response: %w", err)
	}
	return &tree, nil
}

func (c *Client) fetchRawContent(ctx context.Context, owner, repo, path, ref string) (string, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/contents/%s?ref=%s",
		c.apiURL, url.PathEscape(owner), url.PathEscape(repo), escapePath(path), url.QueryEscape(ref))

	body, status, err := c.get(ctx, endpoint, "application/vnd.github.v3.raw")
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", path, err)
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("github API error for %s (status %d): %s", path, status, string(body))
	}
	return string(body), nil
}

func (c *Client) get(ctx context.Context, endpoint, accept string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("creating request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", accept)

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("reading response: %w", err)
	}
	return body, resp.StatusCode, nil
}

// escapePath escapes each path segment while keeping separators.
func escapePath(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
