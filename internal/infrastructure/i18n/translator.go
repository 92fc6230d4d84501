// Package i18n provides the message tables used to localize log messages.
package i18n

import (
	"embed"
	"fmt"
	"maps"
	"path"
	"slices"
	"strings"

	"github.com/amirhossein-jamali/logfacade/internal/domain/entity"
	json "github.com/goccy/go-json"
)

//go:embed messages/*.json
var messageFS embed.FS

// Translator resolves message keys against tables loaded once at construction.
// It is immutable and safe for concurrent use.
type Translator struct {
	messages map[entity.Language]map[string]string
}

// NewTranslator loads the embedded table of every supported language
func NewTranslator() (*Translator, error) {
	tables := make(map[entity.Language][]byte)
	for _, lang := range []entity.Language{entity.LanguageEN, entity.LanguageES} {
		data, err := messageFS.ReadFile(path.Join("messages", string(lang)+".json"))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s messages: %w", lang, err)
		}
		tables[lang] = data
	}
	return NewTranslatorFromJSON(tables)
}

// NewTranslatorFromJSON builds a translator from raw JSON objects of
// key -> template, one per language
func NewTranslatorFromJSON(tables map[entity.Language][]byte) (*Translator, error) {
	messages := make(map[entity.Language]map[string]string, len(tables))
	for lang, data := range tables {
		var table map[string]string
		if err := json.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("failed to decode %s messages: %w", lang, err)
		}
		messages[lang] = table
	}
	return &Translator{messages: messages}, nil
}

// Has reports whether key is defined for lang
func (t *Translator) Has(lang entity.Language, key string) bool {
	_, ok := t.messages[lang][key]
	return ok
}

// Translate returns the template for key in lang with every {name}
// placeholder replaced by the matching parameter. Unknown keys are returned
// unchanged; placeholders without a parameter are left intact. Substitution
// is a single pass: placeholders inside parameter values are not expanded.
func (t *Translator) Translate(lang entity.Language, key string, params map[string]any) string {
	template, ok := t.messages[lang][key]
	if !ok {
		template = key
	}
	if len(params) == 0 {
		return template
	}

	pairs := make([]string, 0, 2*len(params))
	for _, name := range slices.Sorted(maps.Keys(params)) {
		pairs = append(pairs, "{"+name+"}", fmt.Sprint(params[name]))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// Languages lists the languages with a loaded table, sorted
func (t *Translator) Languages() []entity.Language {
	return slices.Sorted(maps.Keys(t.messages))
}
