package html

import (
	"fmt"
	"time"

	"github.com/maragudk/gomponents-heroicons/v2/outline"
	"github.com/parameshwari/pg-manager/helpdesk/internal"
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

func page(title string, config *internal.ServerConfig, children ...Node) Node {
	return HTML5(HTML5Props{
		Title:       fmt.Sprintf("%s - %s", title, config.AppName),
		Description: "Contact support and find answers to common questions.",
		Language:    "en",
		Head: []Node{
			Link(Rel("icon"), Type("image/svg+xml"), Href(internal.PathStatic+"logo.svg")),
			Script(Src("https://cdn.tailwindcss.com")),
			Script(Raw(`tailwind.config = { darkMode: 'class' }`)),
			Script(Src(htmxSrc)),
			Script(Raw(`
				if (localStorage.theme === 'dark' || (!('theme' in localStorage) && window.matchMedia('(prefers-color-scheme: dark)').matches)) {
					document.documentElement.classList.add('dark')
				} else {
					document.documentElement.classList.remove('dark')
				}
			`)),
		},
		Body: []Node{
			Class("min-h-screen flex flex-col bg-gray-50 dark:bg-black font-sans"),
			Div(
				Class("flex-grow"),
				navbar(config.AppName),
				Group(children),
			),
			footer(config.AppName),
		},
	})
}

func footer(appName string) Node {
	return Footer(
		Class("bg-gray-50 dark:bg-black py-6 mt-auto"),
		Div(
			Class("container mx-auto px-4 text-sm text-gray-500 dark:text-gray-400"),
			Span(Text(fmt.Sprintf("© %d %s", time.Now().Year(), appName))),
		),
	)
}

func navbar(appName string) Node {
	return Header(
		Class("bg-white dark:bg-neutral-800 border-b border-gray-200 dark:border-neutral-700"),
		Div(
			Class("container mx-auto px-4 py-3"),
			Nav(
				Div(Class("flex justify-between items-center"),
					A(
						Class("flex items-center gap-2 font-semibold text-gray-800 dark:text-white"),
						Href(internal.PathRoot),
						Img(Class("h-8 w-8"), Src(internal.PathStatic+"logo.svg"), Alt(appName)),
						Span(Text(appName)),
					),
					Div(Class("flex justify-right space-x-4 items-center"),
						Button(
							Type("button"),
							Class("h-6 w-6 dark:text-white hover:text-gray-600 dark:hover:text-gray-500 cursor-pointer"),
							ID("theme-toggle"),
							Aria("label", "Toggle theme"),
							Span(Class("hidden dark:block"), outline.Sun()),
							Span(Class("block dark:hidden"), outline.Moon()),
						),
						A(Class("h-6 w-6 dark:text-white hover:text-gray-600 dark:hover:text-gray-500"), outline.QuestionMarkCircle(), Href(internal.PathHelp), TitleAttr("Help")),
					),
				),
				Script(Raw(`
					document.getElementById('theme-toggle').addEventListener('click', function() {
						if (document.documentElement.classList.contains('dark')) {
							document.documentElement.classList.remove('dark')
							localStorage.theme = 'light'
						} else {
							document.documentElement.classList.add('dark')
							localStorage.theme = 'dark'
						}
					})
				`)),
			),
		),
	)
}

// card is a bordered panel with an optional heading row.
func card(title string, icon internal.Icon, children ...Node) Node {
	return Section(
		Class("bg-white border border-gray-200 rounded-lg p-6 dark:bg-neutral-800 dark:border-neutral-700"),
		Data("card", ""),
		If(title != "",
			Div(
				Class("flex items-center gap-2 mb-4"),
				If(icon != "", Span(Class("h-5 w-5 text-gray-500 dark:text-gray-400"), iconNode(icon))),
				H3(Class("text-lg font-semibold text-gray-800 dark:text-white"), Text(title)),
			),
		),
		Group(children),
	)
}

type badgeVariant string

const (
	badgeNeutral badgeVariant = "neutral"
	badgeSuccess badgeVariant = "success"
)

var badgeClasses = map[badgeVariant]string{
	badgeNeutral: "bg-gray-100 text-gray-700 dark:bg-neutral-700 dark:text-gray-200",
	badgeSuccess: "bg-green-100 text-green-700 dark:bg-green-900 dark:text-green-200",
}

func badge(label string, variant badgeVariant) Node {
	classes, ok := badgeClasses[variant]
	if !ok {
		classes = badgeClasses[badgeNeutral]
	}
	return Span(
		Data("badge", string(variant)),
		Class("inline-flex items-center rounded-full px-2.5 py-0.5 text-xs font-medium "+classes),
		Text(label),
	)
}

// linkButton is an anchor styled as a secondary button.
func linkButton(href string, label string) Node {
	return A(
		Href(href),
		Class("inline-flex items-center gap-2 rounded-md border border-gray-300 px-3 py-1.5 text-sm font-medium text-gray-700 hover:bg-gray-100 dark:border-neutral-600 dark:text-gray-200 dark:hover:bg-neutral-700"),
		Span(Text(label)),
	)
}

// iconBadge renders a glyph on a tinted rounded square.
func iconBadge(icon internal.Icon, color string, bgColor string) Node {
	return Div(
		Class("flex h-12 w-12 items-center justify-center rounded-lg "+bgColor),
		Span(Class("h-6 w-6 "+color), iconNode(icon)),
	)
}
