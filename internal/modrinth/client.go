package modrinth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/handiism/modrinth-downloader/internal/config"
	"github.com/handiism/modrinth-downloader/internal/http"
	"github.com/handiism/modrinth-downloader/internal/model"
	"github.com/handiism/modrinth-downloader/internal/modrinth/dto"
)

// Client talks to the Modrinth v2 REST API.
//
// It answers the three questions a run needs: which project a manifest name
// refers to, which releases that project has, and the bytes of a release
// file.
//
// Example usage:
//
//	client := modrinth.NewClient(settings)
//
//	id, err := client.Search(ctx, "Sodium", model.CategoryMod)
//	if err != nil || id == "" {
//	    return err
//	}
//
//	releases, err := client.ListVersions(ctx, id, []string{"1.21.1"})
type Client struct {
	http         *http.Client
	baseURL      string
	directLookup bool
}

// NewClient creates a Client from settings.
//
// The base URL, User-Agent, request timeout and direct slug lookup toggle
// are taken from settings.
func NewClient(settings *config.Settings) *Client {
	timeout := time.Duration(settings.RequestTimeoutSeconds) * time.Second
	return &Client{
		http:         http.NewClient(settings.UserAgent, timeout),
		baseURL:      strings.TrimRight(settings.APIBaseURL, "/"),
		directLookup: settings.DirectLookup,
	}
}

// Search maps a human-written project name to a project identifier.
//
// When direct lookup is enabled and the query looks like a slug, the
// project endpoint is tried first. A 404 there falls through to a full-text
// search narrowed to the category's project type; the top hit wins.
//
// An empty identifier with a nil error means nothing matched. Any transport
// or status failure is returned as an error.
func (c *Client) Search(ctx context.Context, query string, category model.Category) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", nil
	}

	if c.directLookup && looksLikeSlug(query) {
		var project dto.JSONProject
		err := c.http.GetJSON(ctx, c.baseURL+"/project/"+url.PathEscape(query), &project)
		switch {
		case err == nil && project.ID != "":
			return project.ID, nil
		case err != nil && !http.IsNotFound(err):
			return "", fmt.Errorf("lookup %q: %w", query, err)
		}
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", "1")
	if pt := category.ProjectType(); pt != "" {
		params.Set("facets", fmt.Sprintf(`[["project_type:%s"]]`, pt))
	}

	var resp dto.JSONSearchResponse
	if err := c.http.GetJSON(ctx, c.baseURL+"/search?"+params.Encode(), &resp); err != nil {
		return "", fmt.Errorf("search %q: %w", query, err)
	}
	if len(resp.Hits) == 0 {
		return "", nil
	}
	return resp.Hits[0].Identifier(), nil
}

// ListVersions returns every release of a project in registry order.
//
// A non-empty gameVersions narrows the listing on the server side. A release
// missing a required field fails the whole listing.
func (c *Client) ListVersions(ctx context.Context, projectID string, gameVersions []string) ([]model.ReleaseRecord, error) {
	endpoint := c.baseURL + "/project/" + url.PathEscape(projectID) + "/version"
	if len(gameVersions) > 0 {
		encoded, err := json.Marshal(gameVersions)
		if err != nil {
			return nil, err
		}
		endpoint += "?" + url.Values{"game_versions": {string(encoded)}}.Encode()
	}

	var versions []dto.JSONVersion
	if err := c.http.GetJSON(ctx, endpoint, &versions); err != nil {
		return nil, fmt.Errorf("list versions of %s: %w", projectID, err)
	}

	releases := make([]model.ReleaseRecord, 0, len(versions))
	for i := range versions {
		rel, err := versions[i].ToRelease()
		if err != nil {
			return nil, fmt.Errorf("list versions of %s: %w", projectID, err)
		}
		releases = append(releases, rel)
	}
	return releases, nil
}

// Fetch opens a release file for streaming. The caller closes the body.
func (c *Client) Fetch(ctx context.Context, fileURL string) (io.ReadCloser, error) {
	return c.http.Open(ctx, fileURL)
}

// looksLikeSlug reports whether q could be a project slug or id.
// Names with spaces or slashes never resolve through the project endpoint.
func looksLikeSlug(q string) bool {
	return !strings.ContainsAny(q, " \t/\\")
}
