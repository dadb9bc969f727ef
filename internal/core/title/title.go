// Package title carves a free text title out of an utterance using the spans
// of the matched command verb and application mention
package title

import (
	"regexp"
	"strings"

	"domovoy/internal/core/lexicon"
)

// Span is a half-open [Start,End) byte range
type Span struct {
	Start int
	End   int
}

// Carver strips connector words from the two ends of a carved title.
// Interior occurrences are preserved
type Carver struct {
	edgeRe *regexp.Regexp
}

// New compiles a Carver from the pack's edge word lists
func New(edge lexicon.TitleEdge) *Carver {
	lead := make([]string, 0, len(edge.Leading))
	for _, w := range edge.Leading {
		lead = append(lead, regexp.QuoteMeta(w))
	}
	trail := make([]string, 0, len(edge.Trailing))
	for _, w := range edge.Trailing {
		trail = append(trail, regexp.QuoteMeta(w))
	}
	pattern := `(?i)^(?:` + strings.Join(lead, "|") + `)\s+|\s+(?:` + strings.Join(trail, "|") + `)$`
	return &Carver{edgeRe: regexp.MustCompile(pattern)}
}

// Carve returns the title between the command span and the application span.
// When the application mention precedes or overlaps the command, everything
// after the command span is taken instead
func (c *Carver) Carve(text string, cmd, app Span) string {
	var title string
	if cmd.End < app.Start {
		title = strings.TrimSpace(text[cmd.End:app.Start])
	} else {
		title = strings.TrimSpace(text[cmd.End:])
	}
	title = c.edgeRe.ReplaceAllString(title, "")
	return strings.TrimSpace(title)
}
