package lib

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchGithubRepos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/repos", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		assert.Equal(t, "created:asc", r.URL.Query().Get("sort"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name":"hello-world","stargazers_count":42}]`))
	}))
	defer server.Close()

	old := GithubAPIBase
	GithubAPIBase = server.URL
	defer func() { GithubAPIBase = old }()

	repos, err := FetchGithubRepos("octocat")
	require.NoError(t, err)

	var parsed []map[string]interface{}
	require.NoError(t, json.Unmarshal(repos, &parsed))
	require.Len(t, parsed, 1)
	assert.Equal(t, "hello-world", parsed[0]["name"])
}

func TestFetchGithubReposNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	old := GithubAPIBase
	GithubAPIBase = server.URL
	defer func() { GithubAPIBase = old }()

	_, err := FetchGithubRepos("nobody")
	assert.Equal(t, ErrGithubNotFound, err)
}

func TestFetchGithubReposUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	old := GithubAPIBase
	GithubAPIBase = server.URL
	defer func() { GithubAPIBase = old }()

	_, err := FetchGithubRepos("octocat")
	assert.Equal(t, ErrGithubUnavailable, err)
}

func TestFetchGithubReposConnectionFailure(t *testing.T) {
	old := GithubAPIBase
	GithubAPIBase = "http://127.0.0.1:1"
	defer func() { GithubAPIBase = old }()

	_, err := FetchGithubRepos("octocat")
	assert.Equal(t, ErrGithubUnavailable, err)
}
