package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/etnz/tradepulse"
	md "github.com/nao1215/markdown"
)

// Brief renders the morning brief with its provenance line. A zero record
// turns into a hint about how to generate one.
func Brief(rec tradepulse.RecommendationRecord, now time.Time) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("9AM Recommendations — %s", now.Format("Monday Jan 02, 2006")))
	if rec.IsZero() {
		doc.PlainText("No recommendations yet. Run `tpa research` to auto-populate this brief.")
		return doc.String()
	}

	doc.PlainText(fmt.Sprintf("Last updated by Deep Research: %s", rec.GeneratedAt))
	doc.PlainText(rec.Content)
	return doc.String()
}

// History renders briefs from the research log, oldest first.
func History(records []tradepulse.RecommendationRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Research History")
	if len(records) == 0 {
		doc.PlainText("The research log is empty.")
		return doc.String()
	}
	for _, rec := range records {
		doc.H2(rec.GeneratedAt)
		doc.PlainText(rec.Content)
	}
	return doc.String()
}
