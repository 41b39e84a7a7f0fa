// Package discover finds downloadable fraud-alert documents: PDF links on
// bulletin index pages, and advisory entries from RSS/Atom feeds.
package discover

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Kind distinguishes how a discovered document's text is obtained.
type Kind int

const (
	// KindPDF is a downloadable PDF bulletin.
	KindPDF Kind = iota
	// KindPage is an HTML advisory page fetched directly.
	KindPage
)

// DocumentReference is one discovered document. Date is nil when no
// publication date could be recovered; the pipeline skips such entries.
type DocumentReference struct {
	Title string
	URL   string
	Date  *time.Time
	Kind  Kind
}

// Quarter returns the calendar quarter (1-4) of the reference date, derived
// from the month only. Returns 0 when the date is unknown.
func (r *DocumentReference) Quarter() int {
	if r.Date == nil {
		return 0
	}
	return (int(r.Date.Month())-1)/3 + 1
}

// dateExpr matches the "Mon, 14 Jul 2025" pattern used next to bulletin
// links on index pages.
var dateExpr = regexp.MustCompile(`\b\w{3},\s+\d{1,2}\s+\w{3}\s+\d{4}\b`)

const dateLayout = "Mon, 2 Jan 2006"

// Fetcher discovers and downloads bulletin documents over HTTP.
type Fetcher struct {
	client *http.Client
}

// NewFetcher wires an HTTP client; a nil client gets a 20s-timeout default.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &Fetcher{client: client}
}

// Discover fetches an index page and returns a reference for every link
// whose target ends in ".pdf". Fetch and parse failures are soft: they are
// logged and yield an empty slice, never an error, so one bad source cannot
// abort a batch.
func (f *Fetcher) Discover(ctx context.Context, indexURL string) []DocumentReference {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, indexURL, nil)
	if err != nil {
		log.Printf("Invalid index URL %s: %v", indexURL, err)
		return nil
	}
	req.Header.Set("User-Agent", "fraudscan/1.0 (fraud bulletin scanner)")

	resp, err := f.client.Do(req)
	if err != nil {
		log.Printf("Error fetching %s: %v", indexURL, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("Error fetching %s: status %d", indexURL, resp.StatusCode)
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		log.Printf("Error parsing %s: %v", indexURL, err)
		return nil
	}

	base, err := url.Parse(indexURL)
	if err != nil {
		return nil
	}

	var refs []DocumentReference
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if !strings.HasSuffix(strings.ToLower(href), ".pdf") {
			return
		}

		target, err := url.Parse(href)
		if err != nil {
			return
		}

		refs = append(refs, DocumentReference{
			Title: strings.TrimSpace(a.Text()),
			URL:   base.ResolveReference(target).String(),
			Date:  recoverDate(a),
			Kind:  KindPDF,
		})
	})

	return refs
}

// recoverDate scans the link's enclosing block for a publication date. No
// match means the date is genuinely undiscoverable for this entry.
func recoverDate(a *goquery.Selection) *time.Time {
	parent := a.Parent()
	if parent.Length() == 0 {
		return nil
	}

	// Text nodes are joined with a space so a date split across adjacent
	// inline elements still forms one match.
	match := dateExpr.FindString(strings.Join(textNodes(parent.Nodes[0]), " "))
	if match == "" {
		return nil
	}

	// The \s+ in the pattern may span newlines in the page source.
	match = strings.Join(strings.Fields(match), " ")
	parsed, err := time.Parse(dateLayout, match)
	if err != nil {
		return nil
	}
	return &parsed
}

func textNodes(n *html.Node) []string {
	var parts []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			parts = append(parts, c.Data)
			continue
		}
		parts = append(parts, textNodes(c)...)
	}
	return parts
}
