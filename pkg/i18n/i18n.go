// Package i18n provides the display-name translation hook applied to custom
// navigation entries.
package i18n

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// Translator maps a display string to its translation, or returns it unchanged.
type Translator interface {
	Translate(s string) string
}

// TranslatorFunc adapts a function to the Translator interface.
type TranslatorFunc func(s string) string

// Translate calls f(s).
func (f TranslatorFunc) Translate(s string) string {
	return f(s)
}

// Identity returns every string unchanged.
var Identity Translator = TranslatorFunc(func(s string) string { return s })

// Catalog translates strings from an in-memory message catalog for one language.
type Catalog struct {
	tag     language.Tag
	printer *message.Printer
}

// NewCatalog builds a Catalog for tag from source → translation entries.
func NewCatalog(tag language.Tag, entries map[string]string) (*Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(tag))
	for src, dst := range entries {
		if err := b.SetString(tag, src, escape(dst)); err != nil {
			return nil, fmt.Errorf("set catalog entry %q: %w", src, err)
		}
	}

	return &Catalog{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(b)),
	}, nil
}

// LoadCatalog reads a yaml file of the form
//
//	en:
//	  Shop: Shop
//	de:
//	  Shop: Laden
//
// and returns the Catalog for lang. A language missing from the file yields an
// empty catalog.
func LoadCatalog(path, lang string) (*Catalog, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("parse language %q: %w", lang, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read translations %s: %w", path, err)
	}

	var all map[string]map[string]string
	if err := yaml.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("parse translations %s: %w", path, err)
	}

	return NewCatalog(tag, all[lang])
}

// Language returns the catalog language.
func (c *Catalog) Language() language.Tag {
	return c.tag
}

// Translate returns the catalog translation of s, or s itself.
func (c *Catalog) Translate(s string) string {
	return c.printer.Sprintf(message.Key(s, escape(s)))
}

// escape makes s safe to use as a printf format.
func escape(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}
