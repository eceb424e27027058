// Package i18n provides the user-facing strings of the sign-in form. The
// catalogues are yaml files embedded from locales/ and loaded with go-i18n.
package i18n

import (
	"embed"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"signin-front/internal/form"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Catalog translates message ids into one language.
type Catalog struct {
	lang      string
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
}

// New loads every embedded catalogue and returns a Catalog for lang.
// Unknown languages fall back to English.
func New(lang string) *Catalog {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			continue
		}
		// embedded files are part of the build, a parse error is a bug
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			panic("i18n: " + f.Name() + ": " + err.Error())
		}
	}

	return &Catalog{
		lang:      lang,
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, lang, language.English.String()),
	}
}

func (c *Catalog) Lang() string { return c.lang }

// T translates messageID. Unknown ids are returned unchanged.
func (c *Catalog) T(messageID string) string {
	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return msg
}

// Languages lists the languages that have a catalogue.
func (c *Catalog) Languages() []string {
	tags := c.bundle.LanguageTags()
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.String())
	}
	return out
}

// Messages returns the controller strings in the catalogue's language.
func (c *Catalog) Messages() form.Messages {
	return form.Messages{
		Blocked:          c.T("form.blocked"),
		EmailHint:        c.T("form.email_hint"),
		PasswordHint:     c.T("form.password_hint"),
		NavigationFailed: c.T("form.navigation_failed"),
	}
}
