package extract

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"
)

// Page fetches an HTML advisory page and returns its readable body text.
// Like Text, failures are soft: any fetch or extraction problem yields "".
func Page(ctx context.Context, client *http.Client, pageURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		log.Printf("Invalid advisory URL %s: %v", pageURL, err)
		return ""
	}
	req.Header.Set("User-Agent", "fraudscan/1.0 (fraud bulletin scanner)")

	resp, err := client.Do(req)
	if err != nil {
		log.Printf("Error fetching %s: %v", pageURL, err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("Error fetching %s: status %d", pageURL, resp.StatusCode)
		return ""
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("Error reading %s: %v", pageURL, err)
		return ""
	}

	parsedURL, _ := url.Parse(pageURL)
	article, err := readability.FromReader(strings.NewReader(string(body)), parsedURL)
	if err != nil {
		log.Printf("Error extracting %s: %v", pageURL, err)
		return ""
	}

	return strings.TrimSpace(article.TextContent)
}
