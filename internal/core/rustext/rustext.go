// Package rustext provides deterministic normalization for Russian utterance text
// Pipeline order for Normalize
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFKC normalization
// 3 Remove zero-width and format chars plus combining marks (stress accents)
// 4 Collapse whitespace to single spaces and trim
// Case is preserved; Fold is the separate matching fold
package rustext

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			runes.Remove(runes.In(unicode.Mn)), // strip combining marks, stress accents
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ FEFF etc
		)
	},
}

// Normalize returns the cleaned form of s following the pipeline described above
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	return collapseSpaces(ns)
}

// Fold lowercases s for matching and maps е-with-diaeresis to plain е.
// Byte length is preserved for Cyrillic and ASCII input, so offsets found on
// the folded copy stay valid on the original string
func Fold(s string) string {
	if s == "" {
		return s
	}
	return strings.Map(func(r rune) rune {
		r = unicode.ToLower(r)
		if r == 'ё' {
			return 'е'
		}
		return r
	}, s)
}

// IsWordRune reports whether r is a word constituent (letter, digit or underscore)
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// BoundaryBefore reports whether position i in s sits after a non word rune
func BoundaryBefore(s string, i int) bool {
	if i <= 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !IsWordRune(r)
}

// BoundaryAfter reports whether position i in s sits before a non word rune
func BoundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !IsWordRune(r)
}

// FindWholeWord returns the byte span of the first occurrence of term in s
// bounded by non word runes on both sides
func FindWholeWord(s, term string) (start, end int, ok bool) {
	if term == "" {
		return 0, 0, false
	}
	for off := 0; off <= len(s)-len(term); {
		i := strings.Index(s[off:], term)
		if i < 0 {
			return 0, 0, false
		}
		a := off + i
		b := a + len(term)
		if BoundaryBefore(s, a) && BoundaryAfter(s, b) {
			return a, b, true
		}
		_, sz := utf8.DecodeRuneInString(s[a:])
		off = a + sz
	}
	return 0, 0, false
}

// ContainsWholeWord reports whether term occurs in s as a whole word
func ContainsWholeWord(s, term string) bool {
	_, _, ok := FindWholeWord(s, term)
	return ok
}

// HasAnyWordPrefix reports whether any marker occurs in s starting at a word
// boundary; the marker may continue into a longer word
func HasAnyWordPrefix(s string, markers []string) bool {
	for _, m := range markers {
		if m == "" {
			continue
		}
		for off := 0; off <= len(s)-len(m); {
			i := strings.Index(s[off:], m)
			if i < 0 {
				break
			}
			a := off + i
			if BoundaryBefore(s, a) {
				return true
			}
			_, sz := utf8.DecodeRuneInString(s[a:])
			off = a + sz
		}
	}
	return false
}

// collapseSpaces converts whitespace runs to a single ASCII space and trims edges
func collapseSpaces(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inWS = false
		b.WriteRune(r)
	}
	return b.String()
}
