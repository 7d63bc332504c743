package html

import (
	"github.com/maragudk/gomponents-heroicons/v2/outline"
	"github.com/parameshwari/pg-manager/helpdesk/internal"
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// AccordionID is the DOM id of the FAQ accordion container, the swap target
// for partial updates.
const AccordionID = "faq-accordion"

func HelpPage(content internal.Content, state internal.Accordion, config *internal.ServerConfig) Node {
	return page("Help", config, HelpMain(content, state))
}

// HelpMain is the page body without the surrounding document.
func HelpMain(content internal.Content, state internal.Accordion) Node {
	return Main(
		Class("container mx-auto py-8 px-4 space-y-8"),
		Div(
			Class("space-y-1"),
			H1(Class("text-3xl font-bold text-gray-800 dark:text-white"), Text(content.Title)),
			P(Class("text-gray-600 dark:text-gray-300"), Text(content.Subtitle)),
		),
		Div(
			Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-6"),
			Group(Map(content.Contacts, contactCard)),
		),
		Div(
			Class("grid grid-cols-1 lg:grid-cols-3 gap-6"),
			Div(
				Class("lg:col-span-2"),
				card("Frequently Asked Questions", internal.IconHelp, FAQAccordion(content.FAQs, state)),
			),
			Div(
				Class("space-y-6"),
				securityCard(content.Security),
				releaseCard(content.Release),
			),
		),
	)
}

func contactCard(m internal.ContactMethod) Node {
	return Div(
		Data("contact-card", ""),
		Class("bg-white border border-gray-200 rounded-lg p-6 dark:bg-neutral-800 dark:border-neutral-700"),
		Div(
			Class("flex items-start gap-4"),
			iconBadge(m.Icon, m.Color, m.BgColor),
			Div(
				Class("min-w-0"),
				H3(Class("font-semibold text-gray-800 dark:text-white"), Text(m.Title)),
				P(Class("text-sm text-gray-600 dark:text-gray-300"), Text(m.Description)),
				contactValue(m),
			),
		),
	)
}

func contactValue(m internal.ContactMethod) Node {
	classes := "mt-2 block text-sm font-medium break-all " + m.Color
	if m.Href == "" {
		return P(Class(classes), Text(m.Value))
	}
	return A(Class(classes+" hover:underline"), Href(m.Href), Target("_blank"), Rel("noopener noreferrer"), Text(m.Value))
}

// FAQAccordion renders the FAQs as a single, collapsible accordion. Only the
// open item's answer is part of the output.
func FAQAccordion(faqs []internal.FAQEntry, state internal.Accordion) Node {
	items := make([]Node, 0, len(faqs))
	for i, faq := range faqs {
		items = append(items, faqItem(internal.FAQID(i), faq, state))
	}
	return Div(
		ID(AccordionID),
		Class("divide-y divide-gray-200 dark:divide-neutral-700"),
		Group(items),
	)
}

func faqItem(id string, faq internal.FAQEntry, state internal.Accordion) Node {
	open := state.IsOpen(id)
	next := state.Toggle(id)
	expanded := "false"
	if open {
		expanded = "true"
	}
	panelID := id + "-panel"
	return Div(
		ID(id),
		H3(
			A(
				Data("faq-trigger", id),
				Href(internal.HelpURL(next)),
				Attr("hx-get", internal.FAQFragmentURL(next)),
				Attr("hx-target", "#"+AccordionID),
				Attr("hx-swap", "outerHTML"),
				Attr("hx-push-url", internal.HelpURL(next)),
				Aria("expanded", expanded),
				Aria("controls", panelID),
				Class("flex w-full items-center justify-between py-4 text-left font-medium text-gray-800 hover:underline dark:text-white"),
				Span(Text(faq.Question)),
				Span(
					Classes{"h-4 w-4 shrink-0 transition-transform": true, "rotate-180": open},
					outline.ChevronDown(),
				),
			),
		),
		If(open,
			Div(
				ID(panelID),
				Data("faq-panel", id),
				Role("region"),
				Class("pb-4 text-sm text-gray-600 dark:text-gray-300"),
				P(Text(faq.Answer)),
			),
		),
	)
}

func securityCard(note internal.SecurityNote) Node {
	return card(note.Title, internal.IconShield,
		P(Class("text-sm text-gray-600 dark:text-gray-300"), Text(note.Body)),
	)
}

func releaseCard(release internal.ReleaseInfo) Node {
	return card(release.Label, internal.IconInfo,
		Div(
			Class("flex items-center justify-between"),
			Span(Data("version", ""), Class("text-sm font-medium text-gray-800 dark:text-white"), Text(release.Version)),
			badge(release.Status, badgeSuccess),
		),
		Div(
			Class("mt-4"),
			linkButton(internal.PathHelpText, "Plain-text guide"),
		),
	)
}
