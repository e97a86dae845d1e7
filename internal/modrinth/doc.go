// Package modrinth implements the project registry on top of the Modrinth
// v2 REST API.
//
// Three endpoints are used:
//
//	GET /project/{id|slug}              direct lookup of a slug
//	GET /search?query=..&facets=..      full-text search, top hit wins
//	GET /project/{id}/version           release listing, optionally
//	                                    narrowed with game_versions=["x"]
//
// # Lookup Order
//
// A manifest name such as "sodium" is usually the project slug, so the
// client asks the project endpoint first. Names like "Simple Voice Chat"
// skip straight to search. Search results are narrowed by the category's
// project type so a [plugins] entry never resolves to a mod of the same
// name:
//
//	client := modrinth.NewClient(settings)
//	id, err := client.Search(ctx, "Simple Voice Chat", model.CategoryPlugin)
//
// # Release Records
//
// Version payloads are decoded by the dto sub-package. A payload missing
// game_versions, loaders or files, or a file without url or filename, is
// rejected rather than treated as an empty list:
//
//	releases, err := client.ListVersions(ctx, id, nil)
//	for _, r := range releases {
//	    fmt.Println(r.Version, r.GameVersions)
//	}
package modrinth
