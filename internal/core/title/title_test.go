package title

import (
	"strings"
	"testing"

	"domovoy/internal/core/lexicon"
)

func newCarver(t *testing.T) *Carver {
	t.Helper()
	return New(lexicon.MustLoad().TitleEdge)
}

func span(text, sub string) Span {
	i := strings.Index(text, sub)
	if i < 0 {
		panic("substring not found: " + sub)
	}
	return Span{Start: i, End: i + len(sub)}
}

func TestCarve_BetweenCommandAndApp(t *testing.T) {
	t.Parallel()
	c := newCarver(t)

	text := "включи маша и медведь на ютуб"
	got := c.Carve(text, span(text, "включи"), span(text, "ютуб"))
	if got != "маша и медведь" {
		t.Fatalf("Carve = %q, want %q", got, "маша и медведь")
	}
}

func TestCarve_AppBeforeCommandTakesTail(t *testing.T) {
	t.Parallel()
	c := newCarver(t)

	text := "на ютубе включи смешарики"
	got := c.Carve(text, span(text, "включи"), span(text, "ютубе"))
	if got != "смешарики" {
		t.Fatalf("Carve = %q, want %q", got, "смешарики")
	}
}

func TestCarve_StripsEdgeConnectorsOnly(t *testing.T) {
	t.Parallel()
	c := newCarver(t)

	text := "запусти в приложении лунтик на кинопоиск"
	got := c.Carve(text, span(text, "запусти"), span(text, "кинопоиск"))
	// leading "в" is stripped once; "приложении" then survives as interior text
	if got != "приложении лунтик" {
		t.Fatalf("Carve = %q, want %q", got, "приложении лунтик")
	}
}

func TestCarve_InteriorConnectorSurvives(t *testing.T) {
	t.Parallel()
	c := newCarver(t)

	text := "включи один дома на нетфликс"
	got := c.Carve(text, span(text, "включи"), span(text, "нетфликс"))
	if got != "один дома" {
		t.Fatalf("Carve = %q, want %q", got, "один дома")
	}
}

func TestCarve_EmptyBetween(t *testing.T) {
	t.Parallel()
	c := newCarver(t)

	text := "включи ютуб"
	got := c.Carve(text, span(text, "включи"), span(text, "ютуб"))
	if got != "" {
		t.Fatalf("Carve = %q, want empty", got)
	}
}

func TestCarve_TrailingConnectorStripped(t *testing.T) {
	t.Parallel()
	c := newCarver(t)

	// application mentioned before the verb, tail ends with a connector
	text := "в ютубе покажи котиков с"
	got := c.Carve(text, span(text, "покажи"), span(text, "ютубе"))
	if got != "котиков" {
		t.Fatalf("Carve = %q, want %q", got, "котиков")
	}
}
