package html

import (
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/Masterminds/sprig/v3"
	"github.com/parameshwari/pg-manager/helpdesk/internal"
	"github.com/pkg/errors"
)

const helpTextTpl = `{{ .Title | upper }}
{{ .Underline }}
{{ .Subtitle }}

CONTACT US
{{- range .Contacts }}
  * {{ .Title }}: {{ .Value }}
    {{ .Description }}
{{- end }}

FREQUENTLY ASKED QUESTIONS
{{- range $i, $faq := .FAQs }}

{{ add1 $i }}. {{ $faq.Question }}
{{ $faq.Answer | wrap 72 | indent 3 }}
{{- end }}

{{ .Security.Title | upper }}
{{ .Security.Body | wrap 72 }}

{{ .Release.Label }}: {{ .Release.Version }} [{{ .Release.Status }}]
`

var helpText = template.Must(template.New("help.txt").Funcs(textFuncMap()).Parse(helpTextTpl))

// textFuncMap is sprig's text function map without the functions that read
// the process environment.
func textFuncMap() template.FuncMap {
	f := sprig.TxtFuncMap()
	delete(f, "env")
	delete(f, "expandenv")
	return f
}

// HelpText renders the help content as plain text.
func HelpText(content internal.Content) (string, error) {
	var buf strings.Builder
	data := struct {
		internal.Content
		Underline string
	}{
		Content:   content,
		Underline: strings.Repeat("=", utf8.RuneCountInString(content.Title)),
	}
	if err := helpText.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, "rendering help text")
	}
	return buf.String(), nil
}
