package carousel

import (
	"errors"
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Resolver looks up string resources referenced by item titles and
// descriptions.
type Resolver interface {
	Resolve(id string) (string, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(id string) (string, error)

func (f ResolverFunc) Resolve(id string) (string, error) {
	return f(id)
}

// Catalog is a Resolver backed by localized message files. Message files
// are named like go-i18n expects (strings.en.toml, strings.fr.yaml) and hold
// flat id = "text" pairs.
type Catalog struct {
	bundle    *i18n.Bundle
	languages []string
	localizer *i18n.Localizer
}

// NewCatalog creates an empty catalog whose fallback language is def.
func NewCatalog(def language.Tag) *Catalog {
	bundle := i18n.NewBundle(def)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)

	c := &Catalog{bundle: bundle}
	c.SetLanguages(def.String())
	return c
}

// SetLanguages sets the preferred languages, most preferred first. Values
// may be tags or Accept-Language strings.
func (c *Catalog) SetLanguages(langs ...string) {
	c.languages = append([]string(nil), langs...)
	c.localizer = i18n.NewLocalizer(c.bundle, c.languages...)
}

// LoadFile adds the messages in a message file to the catalog.
func (c *Catalog) LoadFile(path string) error {
	if _, err := c.bundle.LoadMessageFile(path); err != nil {
		return fmt.Errorf("failed to load strings from %s: %w", path, err)
	}
	return nil
}

// AddStrings adds literal messages for one language.
func (c *Catalog) AddStrings(tag language.Tag, texts map[string]string) error {
	ids := make([]string, 0, len(texts))
	for id := range texts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	messages := make([]*i18n.Message, 0, len(ids))
	for _, id := range ids {
		messages = append(messages, &i18n.Message{ID: id, Other: texts[id]})
	}
	return c.bundle.AddMessages(tag, messages...)
}

// Resolve returns the text for id in the most preferred language that
// defines it.
func (c *Catalog) Resolve(id string) (string, error) {
	text, err := c.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	var notFound *i18n.MessageNotFoundErr
	if err != nil && errors.As(err, &notFound) && text != "" {
		// Found in the fallback language.
		return text, nil
	}
	if err != nil {
		return "", fmt.Errorf("string %q: %w", id, err)
	}
	return text, nil
}
