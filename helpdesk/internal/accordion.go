package internal

import "slices"

// Accordion is the selection state of a single, collapsible accordion. The
// zero value has no item open.
type Accordion struct {
	Open string
}

// Toggle returns the state after the item with the given id is clicked:
// clicking the open item closes it, clicking any other item opens it and
// closes the previous one.
func (a Accordion) Toggle(id string) Accordion {
	if id == a.Open {
		return Accordion{}
	}
	return Accordion{Open: id}
}

// IsOpen reports whether the item with the given id is the open one.
func (a Accordion) IsOpen(id string) bool {
	return id != "" && a.Open == id
}

// ParseAccordion reads a requested open item, keeping it only if it is one
// of ids.
func ParseAccordion(raw string, ids []string) Accordion {
	if raw == "" || !slices.Contains(ids, raw) {
		return Accordion{}
	}
	return Accordion{Open: raw}
}
