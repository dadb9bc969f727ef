// Package extract implements the slot extraction orchestrator. One call runs
// every matcher over an externally annotated utterance and assembles the final
// structured record. Extraction is stateless; the only shared state is the
// read-only lexicon pack
package extract

import (
	"context"
	"strings"
	"time"

	"domovoy/internal/core/lexicon"
	"domovoy/internal/core/rustext"
	"domovoy/internal/core/timeparse"
	"domovoy/internal/core/title"
	ptime "domovoy/internal/platform/time"
)

// Token is the fixed-shape view of one annotated token
type Token struct {
	Lemma    string
	Surface  string
	IsStop   bool
	IsPunct  bool
	IsNumber bool
}

// Entity is one named entity span reported by the annotator
type Entity struct {
	Label string
	Text  string
}

// Annotator supplies tokens and named entities for an utterance
type Annotator interface {
	Annotate(ctx context.Context, text string) ([]Token, []Entity, error)
}

// Lemmatizer normalizes a single word to dictionary form
type Lemmatizer interface {
	Lemmatize(ctx context.Context, word string) (string, error)
}

// WeatherSlot is the temporal window of a weather query
type WeatherSlot struct {
	Date   *string `json:"date"`
	Period *string `json:"period"`
}

// AlarmSlot is the temporal target of an alarm command
type AlarmSlot struct {
	Time   *string `json:"time"`
	Date   *string `json:"date"`
	Period *string `json:"period"`
}

// SlotRecord is the full extraction result. Absent fields are null, never
// omitted; the weather and alarm sub objects are always present
type SlotRecord struct {
	Room        *string     `json:"room"`
	Device      *string     `json:"device"`
	Value       *string     `json:"value"`
	Application *string     `json:"application"`
	VideoTitle  *string     `json:"video_title"`
	City        *string     `json:"city"`
	Weather     WeatherSlot `json:"weather"`
	Alarm       AlarmSlot   `json:"alarm"`
}

// Options tunes orchestrator behavior
type Options struct {
	// Clock supplies "now" for temporal resolution; nil uses the platform seam
	Clock func() time.Time
}

// Extractor runs slot extraction. Safe for unlimited concurrent use
type Extractor struct {
	pack   *lexicon.Pack
	times  *timeparse.Resolver
	titles *title.Carver
	ann    Annotator
	lemma  Lemmatizer
	now    func() time.Time
}

// New creates an Extractor with default options
func New(p *lexicon.Pack, ann Annotator, lemma Lemmatizer) *Extractor {
	return NewWithOptions(p, ann, lemma, Options{})
}

// NewWithOptions creates an Extractor with custom options
func NewWithOptions(p *lexicon.Pack, ann Annotator, lemma Lemmatizer, opts Options) *Extractor {
	now := opts.Clock
	if now == nil {
		now = func() time.Time { return ptime.Now() }
	}
	return &Extractor{
		pack:   p,
		times:  timeparse.New(p),
		titles: title.New(p.TitleEdge),
		ann:    ann,
		lemma:  lemma,
		now:    now,
	}
}

// Resolver exposes the shared temporal resolver for callers that only need
// resolve-time behavior
func (e *Extractor) Resolver() *timeparse.Resolver { return e.times }

// Extract runs every matcher over text and assembles the SlotRecord.
// Annotator or lemmatizer failure is a hard error; missing slots never are
func (e *Extractor) Extract(ctx context.Context, text string) (SlotRecord, error) {
	var rec SlotRecord

	// byte-length preserving fold keeps spans valid on the original text
	folded := rustext.Fold(text)

	toks, ents, err := e.ann.Annotate(ctx, folded)
	if err != nil {
		return rec, err
	}

	// city: first geopolitical or location entity, lemmatized word by word
	for _, en := range ents {
		if en.Label == "GPE" || en.Label == "LOC" {
			city, cerr := e.normalizeCity(ctx, en.Text)
			if cerr != nil {
				return rec, cerr
			}
			rec.City = &city
			break
		}
	}

	// room: first lemma that is a room table key
	for _, tok := range toks {
		if canon, ok := e.pack.MatchRoom(rustext.Fold(tok.Lemma)); ok {
			rec.Room = ptr(canon)
			break
		}
	}

	// device: first lemma in any device variant list
	for _, tok := range toks {
		if canon, ok := e.pack.MatchDevice(rustext.Fold(tok.Lemma)); ok {
			rec.Device = ptr(canon)
			break
		}
	}

	// value: first number-like token, surface kept verbatim
	for _, tok := range toks {
		if tok.IsNumber {
			rec.Value = ptr(tok.Surface)
			break
		}
	}

	// application and title; the title needs both spans
	cmdStart, cmdEnd, cmdOK := e.pack.FindVideoVerb(folded)
	appName, appStart, appEnd, appOK := e.pack.FindApp(folded)
	if appOK {
		rec.Application = ptr(appName)
	}
	if cmdOK && appOK {
		carved := e.titles.Carve(text,
			title.Span{Start: cmdStart, End: cmdEnd},
			title.Span{Start: appStart, End: appEnd},
		)
		rec.VideoTitle = ptr(carved)
	}

	// weather window, gated on a weather trigger word
	if e.pack.HasWeatherTrigger(folded) {
		td := e.times.Resolve(folded, e.now())
		if td.DateStr != "" {
			rec.Weather.Date = ptr(td.DateStr)
		}
		if td.Period != "" {
			rec.Weather.Period = ptr(td.Period)
		}
		// period without a date defaults to the true current date,
		// independent of the resolver reference
		if td.DateStr == "" && td.Period != "" {
			rec.Weather.Date = ptr(e.now().Format("2006-01-02"))
		}
	}

	// alarm target, gated on an alarm trigger word; independent resolver run
	if e.pack.HasAlarmTrigger(folded) {
		td := e.times.Resolve(folded, e.now())
		if td.Time != "" {
			rec.Alarm.Time = ptr(td.Time)
		}
		if td.DateStr != "" {
			rec.Alarm.Date = ptr(td.DateStr)
		}
		if td.Period != "" {
			rec.Alarm.Period = ptr(td.Period)
		}
		if td.Time == "" && td.Period != "" {
			rec.Alarm.Time = ptr(e.pack.AlarmDefault(td.Period))
		}
	}

	return rec, nil
}

func (e *Extractor) normalizeCity(ctx context.Context, raw string) (string, error) {
	words := strings.Fields(strings.TrimSpace(raw))
	out := make([]string, 0, len(words))
	for _, w := range words {
		lemma, err := e.lemma.Lemmatize(ctx, w)
		if err != nil {
			return "", err
		}
		out = append(out, lemma)
	}
	return strings.Join(out, " "), nil
}

func ptr(s string) *string { return &s }
