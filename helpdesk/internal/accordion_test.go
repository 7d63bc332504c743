package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccordionInitiallyClosed(t *testing.T) {
	var a Accordion
	for _, id := range []string{"faq-0", "faq-1", ""} {
		assert.Falsef(t, a.IsOpen(id), "item %q should be closed", id)
	}
}

func TestAccordionToggle(t *testing.T) {
	t.Run("clicking a closed item opens it", func(t *testing.T) {
		a := Accordion{}.Toggle("faq-0")
		require.Equal(t, "faq-0", a.Open)
		require.True(t, a.IsOpen("faq-0"))
	})

	t.Run("clicking the open item collapses it", func(t *testing.T) {
		a := Accordion{}.Toggle("faq-0").Toggle("faq-0")
		require.Equal(t, Accordion{}, a)
		require.False(t, a.IsOpen("faq-0"))
	})

	t.Run("opening another item closes the previous one", func(t *testing.T) {
		a := Accordion{}.Toggle("faq-0").Toggle("faq-2")
		require.True(t, a.IsOpen("faq-2"))
		require.False(t, a.IsOpen("faq-0"))
	})

	t.Run("toggle does not mutate the receiver", func(t *testing.T) {
		a := Accordion{Open: "faq-1"}
		_ = a.Toggle("faq-3")
		require.Equal(t, "faq-1", a.Open)
	})
}

func TestAccordionAtMostOneOpen(t *testing.T) {
	ids := []string{"faq-0", "faq-1", "faq-2", "faq-3"}
	clicks := []string{"faq-1", "faq-3", "faq-3", "faq-0", "faq-2", "faq-1", "faq-1"}

	a := Accordion{}
	for _, click := range clicks {
		a = a.Toggle(click)
		open := 0
		for _, id := range ids {
			if a.IsOpen(id) {
				open++
			}
		}
		require.LessOrEqualf(t, open, 1, "after clicking %q", click)
	}
	require.Equal(t, Accordion{}, a)
}

func TestParseAccordion(t *testing.T) {
	ids := []string{"faq-0", "faq-1"}
	for raw, want := range map[string]Accordion{
		"":       {},
		"faq-0":  {Open: "faq-0"},
		"faq-1":  {Open: "faq-1"},
		"faq-2":  {}, // not an item
		"FAQ-0":  {}, // ids are case sensitive
		"<faq0>": {},
	} {
		assert.Equalf(t, want, ParseAccordion(raw, ids), "raw %q", raw)
	}
}
