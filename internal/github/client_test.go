package github_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coderev/internal/github"

	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/alice/demo/git/trees/main", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "1", r.URL.Query().Get("recursive"))
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Write([]byte(`{
			"tree": [
				{"path": "README.md", "type": "blob", "size": 12},
				{"path": "src", "type": "tree", "size": 0},
				{"path": "src/main.go", "type": "blob", "size": 40},
				{"path": "assets/logo.png", "type": "blob", "size": 999},
				{"path": "big.sql", "type": "blob", "size": 1048576}
			],
			"truncated": false
		}`))
	})
	mux.HandleFunc("/repos/alice/demo/contents/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "main", r.URL.Query().Get("ref"))
		path := strings.TrimPrefix(r.URL.Path, "/repos/alice/demo/contents/")
		switch path {
		case "README.md":
			w.Write([]byte("# demo repo\n"))
		case "src/main.go":
			w.Write([]byte("package main\n\nfunc main() {}\n"))
		case "assets/logo.png":
			w.Write([]byte{0xff, 0xd8, 0xfe, 0x00})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	mux.HandleFunc("/repos/alice/missing/git/trees/main", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "Not Found"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchRepoFiles(t *testing.T) {
	srv := newTestServer(t)
	client := github.NewClient("test-token", srv.URL, srv.Client())

	files, err := client.FetchRepoFiles(t.Context(), "alice", "demo", "main")
	require.NoError(t, err)

	// Tree order preserved; directory entries, binary and oversized
	// blobs skipped.
	require.Len(t, files, 2)
	require.Equal(t, "README.md", files[0].Path)
	require.Equal(t, "# demo repo\n", files[0].Content)
	require.Equal(t, "src/main.go", files[1].Path)
	require.Contains(t, files[1].Content, "func main()")
}

func TestFetchRepoFiles_NotFound(t *testing.T) {
	srv := newTestServer(t)
	client := github.NewClient("test-token", srv.URL, srv.Client())

	_, err := client.FetchRepoFiles(t.Context(), "alice", "missing", "main")
	require.ErrorIs(t, err, github.ErrRepoNotFound)
}

func TestFetchRepoFiles_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	client := github.NewClient("", srv.URL, srv.Client())
	_, err := client.FetchRepoFiles(t.Context(), "alice", "demo", "main")
	require.Error(t, err)
	require.NotErrorIs(t, err, github.ErrRepoNotFound)
}
