// Package pipeline drives discover -> download -> extract -> classify for
// every document found across the configured sources and emits one alert
// record per successfully processed document.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dtsc-team2/fraudscan/internal/classify"
	"github.com/dtsc-team2/fraudscan/internal/database"
	"github.com/dtsc-team2/fraudscan/internal/discover"
	"github.com/dtsc-team2/fraudscan/internal/extract"
	"github.com/dtsc-team2/fraudscan/internal/taxonomy"
)

// Source is one place to look for documents: a bulletin index page bucketed
// under a period label, or an RSS/Atom feed of advisories.
type Source struct {
	Label string // period label for pages, feed name for feeds
	URL   string
	Feed  bool
}

// Result reports what happened to every discovered document. The per-skip
// counters exist so operators can spot silent data loss from accumulating
// per-document skips.
type Result struct {
	Discovered    int
	Downloaded    int
	SkippedFetch  int // download/page fetch failed
	SkippedEmpty  int // no text could be extracted
	SkippedNoDate int // publication date undiscoverable
	Emitted       int
	Records       []database.Alert
}

// Pipeline processes sources sequentially; documents within a source are
// handled in discovery order, so the emitted record sequence is
// deterministic for a given set of sources.
type Pipeline struct {
	catalog   *taxonomy.Catalog
	fetcher   *discover.Fetcher
	client    *http.Client
	cacheRoot string

	// Extraction is injected so tests can run without real PDF bytes.
	extractPDF  func(path string) string
	extractPage func(ctx context.Context, client *http.Client, url string) string
}

// New creates a pipeline over the given catalog. Downloaded documents are
// cached under cacheRoot, one subdirectory per source label.
func New(catalog *taxonomy.Catalog, client *http.Client, cacheRoot string) *Pipeline {
	if client == nil {
		client = &http.Client{}
	}
	return &Pipeline{
		catalog:     catalog,
		fetcher:     discover.NewFetcher(client),
		client:      client,
		cacheRoot:   cacheRoot,
		extractPDF:  extract.Text,
		extractPage: extract.Page,
	}
}

// Run processes every source in order. A single document's failure never
// aborts the batch; the only loud failure is discovering no documents at
// all, which would otherwise silently persist nothing.
func (p *Pipeline) Run(ctx context.Context, sources []Source) (*Result, error) {
	r := &Result{}

	for _, src := range sources {
		var refs []discover.DocumentReference
		if src.Feed {
			log.Printf("Scanning feed %s...", src.Label)
			refs = p.fetcher.DiscoverFeed(ctx, src.URL)
		} else {
			log.Printf("Scanning %s index page...", src.Label)
			refs = p.fetcher.Discover(ctx, src.URL)
		}
		log.Printf("Found %d documents for %s", len(refs), src.Label)
		r.Discovered += len(refs)

		for _, ref := range refs {
			p.process(ctx, src, ref, r)
		}
	}

	log.Printf("Pipeline complete: %d discovered, %d downloaded, %d emitted, %d skipped (%d fetch, %d empty, %d no date)",
		r.Discovered, r.Downloaded, r.Emitted,
		r.SkippedFetch+r.SkippedEmpty+r.SkippedNoDate,
		r.SkippedFetch, r.SkippedEmpty, r.SkippedNoDate)

	if r.Discovered == 0 {
		return r, fmt.Errorf("no documents discovered across %d sources", len(sources))
	}
	return r, nil
}

func (p *Pipeline) process(ctx context.Context, src Source, ref discover.DocumentReference, r *Result) {
	var text string
	if ref.Kind == discover.KindPDF {
		path, err := p.fetcher.Download(ctx, ref.URL, filepath.Join(p.cacheRoot, src.Label))
		if err != nil || path == "" {
			if err != nil {
				log.Printf("Skipping %s: %v", ref.Title, err)
			}
			r.SkippedFetch++
			return
		}
		r.Downloaded++
		text = p.extractPDF(path)
	} else {
		text = p.extractPage(ctx, p.client, ref.URL)
		if text == "" {
			r.SkippedFetch++
			return
		}
		r.Downloaded++
	}

	if strings.TrimSpace(text) == "" {
		log.Printf("No text extracted for %s", ref.Title)
		r.SkippedEmpty++
		return
	}

	if ref.Date == nil {
		log.Printf("Skipping %s: no date found", ref.Title)
		r.SkippedNoDate++
		return
	}

	res := classify.Classify(text, p.catalog)

	period := src.Label
	if src.Feed {
		period = ref.Date.Format("2006")
	}

	r.Records = append(r.Records, database.Alert{
		Title:         ref.Title,
		Date:          ref.Date.Format("2006-01-02"),
		Quarter:       ref.Quarter(),
		KeywordCounts: res.Counts,
		Summary:       res.Summary,
		SourceURL:     &ref.URL,
		Period:        &period,
	})
	r.Emitted++
}
