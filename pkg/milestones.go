package bumpversion

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// DefaultAPIURL is the base URL of the GitHub REST API.
const DefaultAPIURL = "https://api.github.com"

// MilestoneMap maps milestone titles, parsed as versions, to milestone numbers.
type MilestoneMap map[Version]string

// MilestoneSource provides the milestones of a repository.
type MilestoneSource interface {
	FetchMilestones(ctx context.Context) (MilestoneMap, error)
}

// Client fetches milestones from the GitHub REST API. Requests are
// unauthenticated and use the default transport unless HTTPClient is set.
type Client struct {
	BaseURL    string
	Owner      string
	Repo       string
	HTTPClient *http.Client
}

// NewClient returns a Client for owner/repo on the given API base URL.
// An empty baseURL selects DefaultAPIURL.
func NewClient(baseURL, owner, repo string) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	return &Client{BaseURL: baseURL, Owner: owner, Repo: repo}
}

// MilestonesURL returns the endpoint queried by FetchMilestones.
func (c *Client) MilestonesURL() string {
	return fmt.Sprintf("%s/repos/%s/%s/milestones",
		strings.TrimRight(c.BaseURL, "/"), url.PathEscape(c.Owner), url.PathEscape(c.Repo))
}

type milestone struct {
	Title  string `json:"title"`
	Number int    `json:"number"`
}

// FetchMilestones retrieves the milestones and maps their titles to their
// numbers. It fails with ErrTypeMismatch unless the API answers with a
// JSON list.
func (c *Client) FetchMilestones(ctx context.Context) (MilestoneMap, error) {
	endpoint := c.MilestonesURL()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building milestones request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching milestones: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading milestones response: %w", err)
	}
	return decodeMilestones(body)
}

func decodeMilestones(body []byte) (MilestoneMap, error) {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decoding milestones response: %w", err)
	}
	if _, ok := raw.([]any); !ok {
		return nil, fmt.Errorf("%w: expected a JSON list from GitHub API, got %s",
			ErrTypeMismatch, strings.TrimSpace(string(body)))
	}

	var milestones []milestone
	if err := json.Unmarshal(body, &milestones); err != nil {
		return nil, fmt.Errorf("decoding milestones: %w", err)
	}
	result := make(MilestoneMap, len(milestones))
	for _, m := range milestones {
		v, err := ParseVersion(m.Title)
		if err != nil {
			return nil, fmt.Errorf("milestone #%d: %w", m.Number, err)
		}
		result[v] = strconv.Itoa(m.Number)
	}
	return result, nil
}

// Versions returns the milestone versions in ascending order.
func (m MilestoneMap) Versions() []Version {
	versions := make([]Version, 0, len(m))
	for v := range m {
		versions = append(versions, v)
	}
	slices.SortFunc(versions, Version.Compare)
	return versions
}

// NextMilestoneVersion returns the smallest milestone version strictly
// greater than version. It fails with ErrNotFound if there is none.
func NextMilestoneVersion(version Version, milestones MilestoneMap) (Version, error) {
	for _, v := range milestones.Versions() {
		if version.Less(v) {
			return v, nil
		}
	}
	return Version{}, fmt.Errorf("%w: no milestone exists for a version later than %s", ErrNotFound, version)
}
