package scraper

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const baseURL = "http://osoc.berkeley.edu/OSOC/osoc"

// Client handles HTTP requests to the OSOC course search site
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new scraper client
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Search posts a building search to OSOC for the given term and returns the
// raw HTTP response. Building names are passed through exactly as given; the
// site matches them case- and whitespace-sensitively.
func (c *Client) Search(building, term string) (*http.Response, error) {
	form := url.Values{
		"p_term":       {term},
		"p_bldg":       {building},
		"p_print_flag": {"Y"},
	}

	resp, err := c.httpClient.Post(baseURL, "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", baseURL, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code %d when fetching %s", resp.StatusCode, baseURL)
	}

	return resp, nil
}

// FetchCourses downloads and parses the search results for a building.
func (c *Client) FetchCourses(building, term string) (*SearchResults, error) {
	resp, err := c.Search(building, term)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return ParseResults(resp.Body)
}
