package modrinth

import (
	"context"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/handiism/modrinth-downloader/internal/config"
	"github.com/handiism/modrinth-downloader/internal/model"
)

func newTestClient(t *testing.T, handler nethttp.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	settings := config.DefaultSettings()
	settings.APIBaseURL = srv.URL + "/v2/"
	return NewClient(settings)
}

func TestClient_Search(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		category   model.Category
		wantID     string
		wantSearch bool
		wantFacet  string
	}{
		{
			name:     "direct slug lookup",
			query:    "sodium",
			category: model.CategoryMod,
			wantID:   "AANobbMI",
		},
		{
			name:       "slug not found falls back to search",
			query:      "unknown-slug",
			category:   model.CategoryPlugin,
			wantID:     "hit-1",
			wantSearch: true,
			wantFacet:  `[["project_type:plugin"]]`,
		},
		{
			name:       "names with spaces skip direct lookup",
			query:      "Simple Voice Chat",
			category:   model.CategoryDatapack,
			wantID:     "hit-1",
			wantSearch: true,
			wantFacet:  `[["project_type:datapack"]]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var searched atomic.Bool
			var gotFacet, gotQuery string
			c := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
				switch {
				case r.URL.Path == "/v2/project/sodium":
					io.WriteString(w, `{"id":"AANobbMI","slug":"sodium","project_type":"mod"}`)
				case strings.HasPrefix(r.URL.Path, "/v2/project/"):
					if strings.Contains(r.URL.Path, " ") {
						t.Errorf("unexpected direct lookup for %q", r.URL.Path)
					}
					nethttp.NotFound(w, r)
				case r.URL.Path == "/v2/search":
					searched.Store(true)
					gotFacet = r.URL.Query().Get("facets")
					gotQuery = r.URL.Query().Get("query")
					io.WriteString(w, `{"hits":[{"project_id":"hit-1","slug":"hit"}],"total_hits":1}`)
				default:
					nethttp.NotFound(w, r)
				}
			})

			id, err := c.Search(context.Background(), tt.query, tt.category)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.wantID {
				t.Errorf("Search() = %q, want %q", id, tt.wantID)
			}
			if searched.Load() != tt.wantSearch {
				t.Errorf("searched = %v, want %v", searched.Load(), tt.wantSearch)
			}
			if tt.wantSearch {
				if gotFacet != tt.wantFacet {
					t.Errorf("facets = %q, want %q", gotFacet, tt.wantFacet)
				}
				if gotQuery != tt.query {
					t.Errorf("query = %q, want %q", gotQuery, tt.query)
				}
			}
		})
	}
}

func TestClient_SearchNoHits(t *testing.T) {
	c := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.URL.Path == "/v2/search" {
			io.WriteString(w, `{"hits":[],"total_hits":0}`)
			return
		}
		nethttp.NotFound(w, r)
	})

	id, err := c.Search(context.Background(), "nothing", model.CategoryMod)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "" {
		t.Errorf("Search() = %q, want empty", id)
	}
}

func TestClient_SearchServerError(t *testing.T) {
	c := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		nethttp.Error(w, "boom", nethttp.StatusInternalServerError)
	})

	if _, err := c.Search(context.Background(), "sodium", model.CategoryMod); err == nil {
		t.Error("expected error for 500 response")
	}
}

func TestClient_ListVersions(t *testing.T) {
	var gotFilter string
	c := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.URL.Path != "/v2/project/AANobbMI/version" {
			nethttp.NotFound(w, r)
			return
		}
		gotFilter = r.URL.Query().Get("game_versions")
		io.WriteString(w, `[
			{"id":"v2","name":"Sodium 0.6","version_number":"0.6.0",
			 "game_versions":["1.21","1.21.1"],"loaders":["fabric","neoforge"],
			 "files":[{"url":"https://cdn.example/sodium-0.6.0.jar","filename":"sodium-0.6.0.jar","primary":true,
			           "hashes":{"sha1":"aa","sha512":"bb"}}]},
			{"id":"v1","name":"Sodium 0.5","version_number":"0.5.8",
			 "game_versions":["1.20.4"],"loaders":["fabric"],"files":[]}
		]`)
	})

	releases, err := c.ListVersions(context.Background(), "AANobbMI", []string{"1.21.1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotFilter != `["1.21.1"]` {
		t.Errorf("game_versions = %q, want %q", gotFilter, `["1.21.1"]`)
	}
	if len(releases) != 2 {
		t.Fatalf("got %d releases, want 2", len(releases))
	}

	first := releases[0]
	if first.Version != "0.6.0" || !first.HasGameVersion("1.21.1") {
		t.Errorf("first release = %+v", first)
	}
	if len(first.Files) != 1 || first.Files[0].SHA512 != "bb" || first.Files[0].SHA1 != "aa" || !first.Files[0].Primary {
		t.Errorf("first release files = %+v", first.Files)
	}
	if len(releases[1].Files) != 0 {
		t.Errorf("second release should have no files, got %+v", releases[1].Files)
	}
}

func TestClient_ListVersionsUnfiltered(t *testing.T) {
	var rawQuery string
	c := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		rawQuery = r.URL.RawQuery
		io.WriteString(w, `[]`)
	})

	releases, err := c.ListVersions(context.Background(), "abc", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(releases) != 0 {
		t.Errorf("got %d releases, want 0", len(releases))
	}
	if rawQuery != "" {
		t.Errorf("unfiltered listing sent query %q", rawQuery)
	}
}

func TestClient_ListVersionsMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing game_versions", `[{"version_number":"1","loaders":["fabric"],"files":[]}]`},
		{"missing loaders", `[{"version_number":"1","game_versions":["1.21"],"files":[]}]`},
		{"missing files", `[{"version_number":"1","game_versions":["1.21"],"loaders":["fabric"]}]`},
		{"file without url", `[{"version_number":"1","game_versions":["1.21"],"loaders":["fabric"],"files":[{"filename":"a.jar"}]}]`},
		{"not a list", `{"error":"nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
				io.WriteString(w, tt.body)
			})
			if _, err := c.ListVersions(context.Background(), "abc", nil); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestClient_Fetch(t *testing.T) {
	c := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.URL.Path == "/files/a.jar" {
			io.WriteString(w, "jar-bytes")
			return
		}
		nethttp.NotFound(w, r)
	})

	body, err := c.Fetch(context.Background(), strings.TrimSuffix(c.baseURL, "/v2")+"/files/a.jar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer body.Close()
	data, _ := io.ReadAll(body)
	if string(data) != "jar-bytes" {
		t.Errorf("body = %q", data)
	}

	if _, err := c.Fetch(context.Background(), strings.TrimSuffix(c.baseURL, "/v2")+"/files/missing.jar"); err == nil {
		t.Error("expected error for missing file")
	}
}
