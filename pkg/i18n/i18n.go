// Package i18n localizes API messages. Spanish is the store's default
// language; English is bundled as well.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var locales embed.FS

type Translator struct {
	bundle      *goi18n.Bundle
	defaultLang string
}

// New builds a translator with the embedded catalogs loaded, then any extra
// catalog files in order. A later file overrides earlier messages.
func New(defaultLang string, files ...string) (*Translator, error) {
	tag, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("parse default language %q: %w", defaultLang, err)
	}

	bundle := goi18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if _, err := bundle.LoadMessageFileFS(locales, path.Join("locales", e.Name())); err != nil {
			return nil, fmt.Errorf("load %s: %w", e.Name(), err)
		}
	}

	t := &Translator{bundle: bundle, defaultLang: tag.String()}
	for _, f := range files {
		if err := t.Load(f); err != nil {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return t, nil
}

// Load adds or overrides messages from a file on disk, e.g. active.fr.json.
func (t *Translator) Load(file string) error {
	_, err := t.bundle.LoadMessageFile(file)
	return err
}

// T localizes id for the given Accept-Language value. Unknown ids come back
// unchanged so a missing translation never hides the message entirely.
func (t *Translator) T(acceptLanguage, id string, data map[string]interface{}) string {
	loc := goi18n.NewLocalizer(t.bundle, acceptLanguage, t.defaultLang)
	msg, err := loc.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}
