// Package lexicon loads and compiles the slot lexicons from the embedded lexicons.json.
// Tables are immutable after Load and shared by reference across all requests
package lexicon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"domovoy/internal/core/rustext"
)

//go:embed lexicons.json
var embedded []byte

type rawEntry struct {
	Canonical string   `json:"canonical"`
	Variants  []string `json:"variants"`
}

type rawWeekday struct {
	Name  string `json:"name"`
	Index int    `json:"index"`
}

type rawRelativeDay struct {
	Name   string `json:"name"`
	Offset int    `json:"offset"`
}

type rawMonth struct {
	Name   string `json:"name"`
	Number int    `json:"number"`
}

type rawTitleEdge struct {
	Leading  []string `json:"leading"`
	Trailing []string `json:"trailing"`
}

type rawPack struct {
	Version         int               `json:"version"`
	Meta            map[string]any    `json:"meta"`
	Rooms           map[string]string `json:"rooms"`
	Devices         []rawEntry        `json:"devices"`
	Applications    []rawEntry        `json:"applications"`
	VideoCommands   []string          `json:"video_commands"`
	AlarmTriggers   []string          `json:"alarm_triggers"`
	WeatherTriggers []string          `json:"weather_triggers"`
	TimePeriods     []string          `json:"time_periods"`
	Weekdays        []rawWeekday      `json:"weekdays"`
	RelativeDays    []rawRelativeDay  `json:"relative_days"`
	WeekendMarkers  []string          `json:"weekend_markers"`
	Months          []rawMonth        `json:"months"`
	TitleEdge       rawTitleEdge      `json:"title_edge"`
	AlarmDefaults   map[string]string `json:"alarm_default_times"`
}

// Weekday maps one surface form (including inflected accusatives) to an index
// where Monday is 0
type Weekday struct {
	Name  string
	Index int
}

// RelativeDay maps a literal word to a day offset from the reference date
type RelativeDay struct {
	Name   string
	Offset int
}

// Month maps a genitive month name to its calendar number
type Month struct {
	Name   string
	Number int
}

// TitleEdge lists the connector words stripped from title boundaries
type TitleEdge struct {
	Leading  []string
	Trailing []string
}

// appVariant is one scan row of the longest-variant-first application index
type appVariant struct {
	canonical string
	variant   string
}

// Pack is the compiled lexicon set.
// Matching policy is per category: rooms and devices are exact-key and
// first-in-table-order; applications scan longest variant first
type Pack struct {
	Version int
	Meta    map[string]any

	rooms           map[string]string
	deviceByVariant map[string]string

	appScan []appVariant

	VideoVerbs      []string
	AlarmTriggers   []string
	WeatherTriggers []string

	Periods        []string
	Weekdays       []Weekday
	RelativeDays   []RelativeDay
	WeekendMarkers []string
	Months         []Month
	monthByName    map[string]int

	TitleEdge TitleEdge

	alarmDefaults map[string]string
}

// FallbackAlarmTime is returned for periods without a configured default
const FallbackAlarmTime = "08:00"

var hhmmRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Load returns the compiled pack from the embedded lexicons.json.
// A malformed pack is a startup error, never a per-request one
func Load() (*Pack, error) {
	var rp rawPack
	if err := json.Unmarshal(embedded, &rp); err != nil {
		return nil, fmt.Errorf("lexicon: parse lexicons.json: %w", err)
	}
	if rp.Version != 1 {
		return nil, fmt.Errorf("lexicon: unsupported lexicons.json version %d (want 1)", rp.Version)
	}

	p := &Pack{
		Version:         rp.Version,
		Meta:            rp.Meta,
		rooms:           make(map[string]string, len(rp.Rooms)),
		deviceByVariant: make(map[string]string, 32),
		monthByName:     make(map[string]int, len(rp.Months)),
		alarmDefaults:   make(map[string]string, len(rp.AlarmDefaults)),
	}

	for variant, canon := range rp.Rooms {
		variant = rustext.Fold(strings.TrimSpace(variant))
		canon = strings.TrimSpace(canon)
		if variant == "" || canon == "" {
			return nil, fmt.Errorf("lexicon: empty room entry")
		}
		p.rooms[variant] = canon
	}

	for _, d := range rp.Devices {
		if strings.TrimSpace(d.Canonical) == "" || len(d.Variants) == 0 {
			return nil, fmt.Errorf("lexicon: device entry missing canonical or variants")
		}
		for _, v := range d.Variants {
			v = rustext.Fold(strings.TrimSpace(v))
			if v == "" {
				return nil, fmt.Errorf("lexicon: empty variant for device %q", d.Canonical)
			}
			// first canonical in table order wins on duplicate variants
			if _, dup := p.deviceByVariant[v]; !dup {
				p.deviceByVariant[v] = d.Canonical
			}
		}
	}

	for _, a := range rp.Applications {
		if strings.TrimSpace(a.Canonical) == "" || len(a.Variants) == 0 {
			return nil, fmt.Errorf("lexicon: application entry missing canonical or variants")
		}
		for _, v := range a.Variants {
			v = rustext.Fold(strings.TrimSpace(v))
			if v == "" {
				return nil, fmt.Errorf("lexicon: empty variant for application %q", a.Canonical)
			}
			p.appScan = append(p.appScan, appVariant{canonical: a.Canonical, variant: v})
		}
	}
	// longest variant first, measured in runes; stable keeps table order on ties
	sort.SliceStable(p.appScan, func(i, j int) bool {
		return utf8.RuneCountInString(p.appScan[i].variant) > utf8.RuneCountInString(p.appScan[j].variant)
	})

	var err error
	if p.VideoVerbs, err = foldList("video_commands", rp.VideoCommands); err != nil {
		return nil, err
	}
	if p.AlarmTriggers, err = foldList("alarm_triggers", rp.AlarmTriggers); err != nil {
		return nil, err
	}
	if p.WeatherTriggers, err = foldList("weather_triggers", rp.WeatherTriggers); err != nil {
		return nil, err
	}
	if p.Periods, err = foldList("time_periods", rp.TimePeriods); err != nil {
		return nil, err
	}
	if p.WeekendMarkers, err = foldList("weekend_markers", rp.WeekendMarkers); err != nil {
		return nil, err
	}

	for _, w := range rp.Weekdays {
		name := rustext.Fold(strings.TrimSpace(w.Name))
		if name == "" || w.Index < 0 || w.Index > 6 {
			return nil, fmt.Errorf("lexicon: bad weekday entry %q/%d", w.Name, w.Index)
		}
		p.Weekdays = append(p.Weekdays, Weekday{Name: name, Index: w.Index})
	}
	if len(p.Weekdays) == 0 {
		return nil, fmt.Errorf("lexicon: no weekdays")
	}

	for _, rd := range rp.RelativeDays {
		name := rustext.Fold(strings.TrimSpace(rd.Name))
		if name == "" || rd.Offset < 0 {
			return nil, fmt.Errorf("lexicon: bad relative day entry %q/%d", rd.Name, rd.Offset)
		}
		p.RelativeDays = append(p.RelativeDays, RelativeDay{Name: name, Offset: rd.Offset})
	}
	if len(p.RelativeDays) == 0 {
		return nil, fmt.Errorf("lexicon: no relative days")
	}

	for _, m := range rp.Months {
		name := rustext.Fold(strings.TrimSpace(m.Name))
		if name == "" || m.Number < 1 || m.Number > 12 {
			return nil, fmt.Errorf("lexicon: bad month entry %q/%d", m.Name, m.Number)
		}
		p.Months = append(p.Months, Month{Name: name, Number: m.Number})
		p.monthByName[name] = m.Number
	}
	if len(p.Months) != 12 {
		return nil, fmt.Errorf("lexicon: want 12 months, got %d", len(p.Months))
	}

	if p.TitleEdge.Leading, err = foldList("title_edge.leading", rp.TitleEdge.Leading); err != nil {
		return nil, err
	}
	if p.TitleEdge.Trailing, err = foldList("title_edge.trailing", rp.TitleEdge.Trailing); err != nil {
		return nil, err
	}

	for period, hhmm := range rp.AlarmDefaults {
		period = rustext.Fold(strings.TrimSpace(period))
		if period == "" || !hhmmRe.MatchString(hhmm) {
			return nil, fmt.Errorf("lexicon: bad alarm default %q=%q", period, hhmm)
		}
		p.alarmDefaults[period] = hhmm
	}

	return p, nil
}

// MustLoad panics on a malformed pack; for main wiring only
func MustLoad() *Pack {
	p, err := Load()
	if err != nil {
		panic(err)
	}
	return p
}

func foldList(section string, in []string) ([]string, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("lexicon: empty section %s", section)
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = rustext.Fold(strings.TrimSpace(s))
		if s == "" {
			return nil, fmt.Errorf("lexicon: blank entry in %s", section)
		}
		out = append(out, s)
	}
	return out, nil
}

// MatchRoom returns the canonical room for a folded lemma
func (p *Pack) MatchRoom(lemma string) (string, bool) {
	canon, ok := p.rooms[lemma]
	return canon, ok
}

// MatchDevice returns the canonical device whose variant list contains the folded lemma
func (p *Pack) MatchDevice(lemma string) (string, bool) {
	canon, ok := p.deviceByVariant[lemma]
	return canon, ok
}

// FindApp scans folded text for application variants, longest variant first,
// and returns the canonical name plus the [start,end) byte span of the mention
func (p *Pack) FindApp(folded string) (name string, start, end int, ok bool) {
	for _, av := range p.appScan {
		if s, e, found := rustext.FindWholeWord(folded, av.variant); found {
			return av.canonical, s, e, true
		}
	}
	return "", 0, 0, false
}

// FindVideoVerb returns the span of the first video command verb in folded text,
// scanning verbs in table order
func (p *Pack) FindVideoVerb(folded string) (start, end int, ok bool) {
	for _, v := range p.VideoVerbs {
		if s, e, found := rustext.FindWholeWord(folded, v); found {
			return s, e, true
		}
	}
	return 0, 0, false
}

// HasWeatherTrigger reports whether folded text mentions a weather trigger word
func (p *Pack) HasWeatherTrigger(folded string) bool {
	return containsAnyWord(folded, p.WeatherTriggers)
}

// HasAlarmTrigger reports whether folded text mentions an alarm trigger word
func (p *Pack) HasAlarmTrigger(folded string) bool {
	return containsAnyWord(folded, p.AlarmTriggers)
}

// MonthNumber resolves a genitive month name to 1..12
func (p *Pack) MonthNumber(name string) (int, bool) {
	n, ok := p.monthByName[name]
	return n, ok
}

// AlarmDefault returns the default clock time for a period
func (p *Pack) AlarmDefault(period string) string {
	if hhmm, ok := p.alarmDefaults[period]; ok {
		return hhmm
	}
	return FallbackAlarmTime
}

// Stats reports table sizes for diagnostics endpoints
func (p *Pack) Stats() map[string]int {
	apps := map[string]struct{}{}
	for _, av := range p.appScan {
		apps[av.canonical] = struct{}{}
	}
	devices := map[string]struct{}{}
	for _, canon := range p.deviceByVariant {
		devices[canon] = struct{}{}
	}
	return map[string]int{
		"room_variants": len(p.rooms),
		"devices":       len(devices),
		"applications":  len(apps),
		"video_verbs":   len(p.VideoVerbs),
		"weekdays":      len(p.Weekdays),
		"months":        len(p.Months),
	}
}

func containsAnyWord(s string, terms []string) bool {
	for _, t := range terms {
		if rustext.ContainsWholeWord(s, t) {
			return true
		}
	}
	return false
}
