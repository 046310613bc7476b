package lib

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var githubClient = &http.Client{Timeout: 10 * time.Second}

// GithubAPIBase is the upstream API root; overridable in tests
var GithubAPIBase = "https://api.github.com"

var (
	ErrGithubNotFound    = errors.New("No Github profile found")
	ErrGithubUnavailable = errors.New("Github unavailable")
)

// FetchGithubRepos proxies the user's five most recent repositories from the
// code-hosting API and returns the upstream JSON verbatim
func FetchGithubRepos(username string) (json.RawMessage, error) {
	url := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc", GithubAPIBase, username)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, ErrGithubUnavailable
	}

	req.Header.Add("Accept", "application/vnd.github+json")
	if Cfg != nil && Cfg.GithubToken != "" {
		req.Header.Add("Authorization", "token "+Cfg.GithubToken)
	}

	response, err := githubClient.Do(req)
	if err != nil {
		return nil, ErrGithubUnavailable
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		return nil, ErrGithubNotFound
	}
	if response.StatusCode != http.StatusOK {
		return nil, ErrGithubUnavailable
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, ErrGithubUnavailable
	}

	if !json.Valid(body) {
		return nil, ErrGithubUnavailable
	}

	return json.RawMessage(body), nil
}
