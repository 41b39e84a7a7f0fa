package discover

import (
	"context"
	"log"
	"strings"

	"github.com/mmcdole/gofeed"
)

// DiscoverFeed parses an RSS/Atom feed of alert announcements and returns a
// reference per item. Items linking to PDFs join the download path; other
// items are treated as HTML advisory pages. Failures are soft, mirroring
// index-page discovery.
func (f *Fetcher) DiscoverFeed(ctx context.Context, feedURL string) []DocumentReference {
	parser := gofeed.NewParser()
	parser.Client = f.client

	feed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		log.Printf("Failed to parse feed %s: %v", feedURL, err)
		return nil
	}

	var refs []DocumentReference
	for _, item := range feed.Items {
		link := item.Link
		if link == "" {
			link = item.GUID
		}
		title := strings.TrimSpace(item.Title)
		if link == "" || title == "" {
			continue
		}

		ref := DocumentReference{
			Title: title,
			URL:   link,
			Kind:  KindPage,
		}
		if strings.HasSuffix(strings.ToLower(link), ".pdf") {
			ref.Kind = KindPDF
		}
		if item.PublishedParsed != nil {
			d := *item.PublishedParsed
			ref.Date = &d
		} else if item.UpdatedParsed != nil {
			d := *item.UpdatedParsed
			ref.Date = &d
		}

		refs = append(refs, ref)
	}

	return refs
}
