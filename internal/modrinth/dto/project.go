package dto

// JSONProject is the subset of GET /project/{id|slug} the client needs.
type JSONProject struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	ProjectType string `json:"project_type"`
}

// JSONSearchResponse is the body of GET /search.
type JSONSearchResponse struct {
	Hits      []JSONSearchHit `json:"hits"`
	TotalHits int             `json:"total_hits"`
}

// JSONSearchHit is one search result.
type JSONSearchHit struct {
	ProjectID   string `json:"project_id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	ProjectType string `json:"project_type"`
}

// Identifier returns the project id, or the slug when the id is missing.
func (h JSONSearchHit) Identifier() string {
	if h.ProjectID != "" {
		return h.ProjectID
	}
	return h.Slug
}
