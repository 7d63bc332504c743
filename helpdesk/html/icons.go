package html

import (
	"github.com/maragudk/gomponents-heroicons/v2/outline"
	"github.com/parameshwari/pg-manager/helpdesk/internal"
	. "maragu.dev/gomponents"
)

var glyphs = map[internal.Icon]func() Node{
	internal.IconPhone:    func() Node { return outline.Phone() },
	internal.IconEmail:    func() Node { return outline.Envelope() },
	internal.IconWhatsApp: func() Node { return outline.ChatBubbleLeftRight() },
	internal.IconWebsite:  func() Node { return outline.GlobeAlt() },
	internal.IconShield:   func() Node { return outline.ShieldCheck() },
	internal.IconInfo:     func() Node { return outline.InformationCircle() },
	internal.IconHelp:     func() Node { return outline.QuestionMarkCircle() },
}

// iconNode resolves an icon key, falling back to the help glyph for keys
// the registry does not know.
func iconNode(icon internal.Icon) Node {
	if glyph, ok := glyphs[icon]; ok {
		return glyph()
	}
	return outline.QuestionMarkCircle()
}
