package internal

import "net/url"

const (
	PathRoot        = "/"
	PathHelp        = "/help"
	PathFAQFragment = "/help/faq"
	PathHelpText    = "/help.txt"
	PathHealth      = "/healthz"
	PathStatic      = "/static/"

	// FAQQueryKey carries the open accordion item in page and fragment URLs.
	FAQQueryKey = "faq"
)

// HelpURL is the full-page URL showing the given accordion state.
func HelpURL(state Accordion) string {
	return withState(PathHelp, state)
}

// FAQFragmentURL is the URL of the accordion fragment for the given state.
func FAQFragmentURL(state Accordion) string {
	return withState(PathFAQFragment, state)
}

func withState(path string, state Accordion) string {
	if state.Open == "" {
		return path
	}
	q := url.Values{}
	q.Set(FAQQueryKey, state.Open)
	return path + "?" + q.Encode()
}
