// Package timeparse resolves Russian temporal expressions into a date, clock
// time and period triple.
//
// Resolution is an explicit ordered rule chain over one shared partial result.
// Later rules may overwrite dates set by earlier rules; the weekend rule is the
// only one that returns early. A bare clock time always wins over an explicit
// calendar date mentioned in the same utterance
package timeparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"domovoy/internal/core/lexicon"
	"domovoy/internal/core/rustext"
)

// Resolved is the outcome of one resolver run.
// DateStr is set if and only if Date is set and is its YYYY-MM-DD rendering
type Resolved struct {
	Date    *time.Time
	Time    string // "HH:MM", empty when absent
	Period  string // period word or "weekend", empty when absent
	DateStr string
}

func (r *Resolved) setDate(t time.Time) {
	r.Date = &t
	r.DateStr = t.Format("2006-01-02")
}

// Resolver holds the compiled temporal patterns.
// Safe for unlimited concurrent use after New
type Resolver struct {
	p       *lexicon.Pack
	dayRe   *regexp.Regexp
	clockRe *regexp.Regexp
}

// New compiles the resolver against a lexicon pack
func New(p *lexicon.Pack) *Resolver {
	names := make([]string, 0, len(p.Months))
	for _, m := range p.Months {
		names = append(names, regexp.QuoteMeta(m.Name))
	}
	dayPattern := `(\d{1,2})(?:\s*[-.]?\s*го)?\s*(` + strings.Join(names, "|") + `)?`

	return &Resolver{
		p:       p,
		dayRe:   regexp.MustCompile(dayPattern),
		clockRe: regexp.MustCompile(`(\d{1,2})(?:[:.\s](\d{1,2}))?\s*(утра|вечера|ночи|дня)?`),
	}
}

// Resolve parses temporal expressions in text against the reference instant
func (r *Resolver) Resolve(text string, ref time.Time) Resolved {
	text = rustext.Fold(text)
	var res Resolved

	// 1. period scan; independent of date detection, last table entry wins
	for _, period := range r.p.Periods {
		if strings.Contains(text, period) {
			res.Period = period
		}
	}

	// 2. weekend family; absolute priority, returns immediately
	if rustext.HasAnyWordPrefix(text, r.p.WeekendMarkers) {
		// normalized so a Sunday reference still lands on the next Saturday
		days := ((5-pyWeekday(ref))%7 + 7) % 7
		if days == 0 {
			days = 7
		}
		res.setDate(ref.AddDate(0, 0, days))
		res.Period = "weekend"
		return res
	}

	// 3. relative days; first table match wins
	for _, rd := range r.p.RelativeDays {
		if rustext.ContainsWholeWord(text, rd.Name) {
			res.setDate(ref.AddDate(0, 0, rd.Offset))
			break
		}
	}

	// 4. weekday names; always strictly future, overwrites step 3
	for _, wd := range r.p.Weekdays {
		if strings.Contains(text, wd.Name) {
			ahead := wd.Index - pyWeekday(ref)
			if ahead <= 0 {
				ahead += 7
			}
			res.setDate(ref.AddDate(0, 0, ahead))
			break
		}
	}

	// 5. day of month with optional month name; invalid dates are discarded
	if m := r.dayRe.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month := int(ref.Month())
		if m[2] != "" {
			month, _ = r.p.MonthNumber(m[2])
		}
		year := ref.Year()
		if target, ok := makeDate(year, month, day, ref.Location()); ok {
			if target.Before(dateOf(ref)) {
				if rolled, ok := makeDate(year+1, month, day, ref.Location()); ok {
					res.setDate(rolled)
				}
			} else {
				res.setDate(target)
			}
		}
	}

	// 6. clock time; unconditionally overwrites any earlier date
	if hour, minute, period, ok := r.findClock(text); ok {
		switch period {
		case "вечера", "ночи", "дня":
			if hour >= 1 && hour <= 11 {
				hour += 12
			}
		case "утра":
			if hour == 12 {
				hour = 0
			}
		}
		hour = clamp(hour, 0, 23)
		minute = clamp(minute, 0, 59)
		res.Time = fmt.Sprintf("%02d:%02d", hour, minute)

		// already past today rolls to tomorrow
		if hour*3600+minute*60 <= ref.Hour()*3600+ref.Minute()*60+ref.Second() {
			res.setDate(ref.AddDate(0, 0, 1))
		} else {
			res.setDate(ref)
		}
	}

	// 7. period without any date defaults to the reference date
	if res.Date == nil && res.Period != "" {
		res.setDate(ref)
	}

	return res
}

// findClock locates the first clock-time mention, hour[:minute] with an
// optional genitive period word. Word boundaries are checked over runes, and
// a match whose tail abuts a word falls back to its shorter forms the way a
// backtracking scan would
func (r *Resolver) findClock(text string) (hour, minute int, period string, ok bool) {
	pos := 0
	for pos <= len(text) {
		loc := r.clockRe.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			return 0, 0, "", false
		}
		start := pos + loc[0]
		if !rustext.BoundaryBefore(text, start) {
			pos = advance(text, start)
			continue
		}

		h, _ := strconv.Atoi(text[pos+loc[2] : pos+loc[3]])
		hourEnd := pos + loc[3]

		minuteSet := loc[4] >= 0
		m := 0
		minuteEnd := hourEnd
		if minuteSet {
			m, _ = strconv.Atoi(text[pos+loc[4] : pos+loc[5]])
			minuteEnd = pos + loc[5]
		}

		if loc[6] >= 0 && rustext.BoundaryAfter(text, pos+loc[7]) {
			return h, m, text[pos+loc[6] : pos+loc[7]], true
		}
		if minuteSet && rustext.BoundaryAfter(text, minuteEnd) {
			return h, m, "", true
		}
		if rustext.BoundaryAfter(text, hourEnd) {
			return h, 0, "", true
		}

		pos = advance(text, start)
	}
	return 0, 0, "", false
}

// pyWeekday returns the weekday with Monday as 0
func pyWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// makeDate validates a calendar day and builds its midnight instant
func makeDate(year, month, day int, loc *time.Location) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	if day > daysInMonth(year, month) {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc), true
}

func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func advance(s string, i int) int {
	_, sz := utf8.DecodeRuneInString(s[i:])
	if sz == 0 {
		sz = 1
	}
	return i + sz
}
