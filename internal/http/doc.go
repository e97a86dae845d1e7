// Package http provides an HTTP client configured for registry API requests.
//
// The Client in this package handles:
//   - User-Agent headers required by the Modrinth API
//   - Status checking (anything but 200 OK is a *StatusError)
//   - JSON decoding of API responses
//   - Streaming response bodies for downloads
//   - Timeout handling
//
// # Basic Usage
//
//	client := http.NewClient(http.DefaultUserAgent, time.Minute)
//
//	// Decode an API response
//	var hits searchResponse
//	err := client.GetJSON(ctx, searchURL, &hits)
//
//	// Stream a file
//	body, err := client.Open(ctx, fileURL)
//	if http.IsNotFound(err) {
//	    // 404 from the server
//	}
package http
