package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// Icon names a glyph in the page's icon registry.
type Icon string

const (
	IconPhone    Icon = "phone"
	IconEmail    Icon = "email"
	IconWhatsApp Icon = "whatsapp"
	IconWebsite  Icon = "website"
	IconShield   Icon = "shield"
	IconInfo     Icon = "info"
	IconHelp     Icon = "help"
)

// ContactMethod is one way to reach support. Value is shown as-is and is
// never validated.
type ContactMethod struct {
	Title       string `json:"title" toml:"title"`
	Description string `json:"description" toml:"description"`
	Value       string `json:"value" toml:"value"`
	Icon        Icon   `json:"icon" toml:"icon"`
	Color       string `json:"color" toml:"color"`
	BgColor     string `json:"bgColor" toml:"bgColor"`
	Href        string `json:"href,omitempty" toml:"href"`
}

type FAQEntry struct {
	Question string `json:"question" toml:"question"`
	Answer   string `json:"answer" toml:"answer"`
}

type SecurityNote struct {
	Title string `json:"title" toml:"title"`
	Body  string `json:"body" toml:"body"`
}

type ReleaseInfo struct {
	Label   string `json:"label" toml:"label"`
	Version string `json:"version" toml:"version"`
	Status  string `json:"status" toml:"status"`
}

// Content is everything the help page shows. Contacts and FAQs are rendered
// in slice order.
type Content struct {
	Title    string
	Subtitle string
	Contacts []ContactMethod
	FAQs     []FAQEntry
	Security SecurityNote
	Release  ReleaseInfo
}

// FAQID returns the display key of the FAQ at position i.
func FAQID(i int) string {
	return fmt.Sprintf("faq-%d", i)
}

// FAQIDs returns the display keys of all FAQs in order.
func (c Content) FAQIDs() []string {
	ids := make([]string, 0, len(c.FAQs))
	for i := range c.FAQs {
		ids = append(ids, FAQID(i))
	}
	return ids
}

const (
	supportPhone   = "+91 9876543210"
	supportEmail   = "support@parameshwari.com"
	supportWebsite = "www.parameshwari.com"
)

// DefaultContent builds the stock help page copy. Every call returns fresh
// slices.
func DefaultContent() Content {
	return Content{
		Title:    "Help & Support",
		Subtitle: "Get help with managing your PG properties, tenants and billing",
		Contacts: []ContactMethod{
			{
				Title:       "Phone Support",
				Description: "Call us for immediate assistance",
				Value:       supportPhone,
				Icon:        IconPhone,
				Color:       "text-blue-600",
				BgColor:     "bg-blue-100",
				Href:        "tel:+919876543210",
			},
			{
				Title:       "Email Support",
				Description: "Send us your queries anytime",
				Value:       supportEmail,
				Icon:        IconEmail,
				Color:       "text-green-600",
				BgColor:     "bg-green-100",
				Href:        "mailto:" + supportEmail,
			},
			{
				Title:       "WhatsApp",
				Description: "Chat with our support team",
				Value:       supportPhone,
				Icon:        IconWhatsApp,
				Color:       "text-emerald-600",
				BgColor:     "bg-emerald-100",
				Href:        "https://wa.me/919876543210",
			},
			{
				Title:       "Website",
				Description: "Visit our website for guides and updates",
				Value:       supportWebsite,
				Icon:        IconWebsite,
				Color:       "text-purple-600",
				BgColor:     "bg-purple-100",
				Href:        "https://" + supportWebsite,
			},
		},
		FAQs: []FAQEntry{
			{
				Question: "How do I add a new tenant?",
				Answer:   "Go to the Tenants page and click Add Tenant. Fill in the tenant details, choose a room and bed, set the rent amount and joining date, then save. The tenant will appear in the room allocation immediately.",
			},
			{
				Question: "How do I generate monthly bills?",
				Answer:   "Open the Billing section and click Generate Bills. Select the month and the property, review the rent and extra charges for each tenant, and confirm. Bills can then be shared with tenants and marked as paid once collected.",
			},
			{
				Question: "How do I verify tenant KYC documents?",
				Answer:   "Open the tenant profile and go to the KYC tab. Review the uploaded ID proof and address proof, then mark each document as Verified or Rejected. Rejected documents can be uploaded again by the tenant.",
			},
			{
				Question: "How do I handle tenant complaints?",
				Answer:   "All complaints are listed in the Complaints section. Open a complaint to see the details, assign it to a staff member, and update its status as work progresses. Tenants are notified when a complaint is marked as resolved.",
			},
		},
		Security: SecurityNote{
			Title: "Data Security",
			Body:  "Your data is encrypted and securely stored. We take encrypted daily backups on MongoDB Atlas so your property records are never lost.",
		},
		Release: ReleaseInfo{
			Label:   "App Version",
			Version: "v1.2.4 (Latest)",
			Status:  "Stable",
		},
	}
}

// contentFile holds optional replacements for the default copy. Nil fields
// keep the defaults.
type contentFile struct {
	Title    *string         `json:"title,omitempty" toml:"title"`
	Subtitle *string         `json:"subtitle,omitempty" toml:"subtitle"`
	Contacts []ContactMethod `json:"contacts,omitempty" toml:"contacts"`
	FAQs     []FAQEntry      `json:"faqs,omitempty" toml:"faqs"`
	Security *SecurityNote   `json:"security,omitempty" toml:"security"`
	Release  *ReleaseInfo    `json:"release,omitempty" toml:"release"`
}

func (f contentFile) apply(c Content) Content {
	if f.Title != nil {
		c.Title = *f.Title
	}
	if f.Subtitle != nil {
		c.Subtitle = *f.Subtitle
	}
	if f.Contacts != nil {
		c.Contacts = f.Contacts
	}
	if f.FAQs != nil {
		c.FAQs = f.FAQs
	}
	if f.Security != nil {
		c.Security = *f.Security
	}
	if f.Release != nil {
		c.Release = *f.Release
	}
	return c
}

// LoadContent returns the default copy with any overrides from path applied.
// An empty path yields DefaultContent.
func LoadContent(path string) (Content, error) {
	content := DefaultContent()
	if strings.TrimSpace(path) == "" {
		return content, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Content{}, errors.Wrapf(err, "reading help content %q", path)
	}

	overrides, err := decodeContentFile(filepath.Ext(path), data)
	if err != nil {
		return Content{}, errors.Wrapf(err, "decoding help content %q", path)
	}
	return overrides.apply(content), nil
}

func decodeContentFile(ext string, data []byte) (contentFile, error) {
	var f contentFile
	switch strings.ToLower(ext) {
	case ".yaml", ".yml", ".json":
		if err := yaml.UnmarshalStrict(data, &f); err != nil {
			return contentFile{}, err
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &f); err != nil {
			return contentFile{}, err
		}
	default:
		return contentFile{}, errors.Errorf("unsupported format %q", ext)
	}
	return f, nil
}
