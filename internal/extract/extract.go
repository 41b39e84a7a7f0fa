// Package extract renders downloaded documents to plain text. Extraction
// failures are never fatal: a document that cannot be parsed yields empty
// text and the pipeline skips it.
package extract

import (
	"log"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Text concatenates the plain-text rendering of every page of a PDF, in
// order, each page followed by a single space. Any open or parse failure
// (including parser panics on malformed files) yields "".
func Text(path string) (text string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Error reading %s: %v", path, r)
			text = ""
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		log.Printf("Error reading %s: %v", path, err)
		return ""
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("Error rendering page %d of %s: %v", i, path, err)
			continue
		}
		b.WriteString(pageText)
		b.WriteString(" ")
	}

	return b.String()
}
