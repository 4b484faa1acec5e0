package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"yogabot/internal/domain"
	"yogabot/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Translator implements the output.Translator port.
var _ output.Translator = (*Translator)(nil)

// Translator resolves dotted keys against one text tree per locale, with
// the default locale as fallback. Trees are never mutated after
// construction, so a Translator is safe for concurrent use.
type Translator struct {
	trees   map[string]*Node
	locales []string
	tags    []language.Tag
	matcher language.Matcher
}

// NewTranslator loads the embedded active.*.toml documents. The default
// locale document is mandatory; any other document that fails to load is
// logged and served through the fallback.
func NewTranslator(logger *zap.Logger) (*Translator, error) {
	return newTranslatorFS(localeFS, logger)
}

func newTranslatorFS(fsys fs.FS, logger *zap.Logger) (*Translator, error) {
	trees := make(map[string]*Node, len(domain.SupportedLocales()))
	for _, locale := range domain.SupportedLocales() {
		file := fmt.Sprintf("active.%s.toml", locale)
		tree, err := loadTree(fsys, file)
		if err != nil {
			if locale == domain.DefaultLocale {
				return nil, fmt.Errorf("i18n: load default locale: %w", err)
			}
			logger.Warn("i18n: failed to load locale file", zap.String("file", file), zap.Error(err))
			continue
		}
		trees[locale] = tree
	}
	return NewTranslatorFromTrees(trees), nil
}

func loadTree(fsys fs.FS, file string) (*Node, error) {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", file, err)
	}
	return NewTree(doc), nil
}

// NewTranslatorFromTrees builds a Translator from in-memory trees keyed by
// locale. Trees for unsupported locales are ignored.
func NewTranslatorFromTrees(trees map[string]*Node) *Translator {
	t := &Translator{trees: make(map[string]*Node, len(trees))}
	tags := []language.Tag{}
	for _, locale := range domain.SupportedLocales() {
		tree, ok := trees[locale]
		if !ok || tree == nil {
			continue
		}
		t.trees[locale] = tree
		t.locales = append(t.locales, locale)
		tags = append(tags, language.Make(locale))
	}
	if len(tags) == 0 || tags[0] != language.Make(domain.DefaultLocale) {
		// The matcher's first tag is its fallback.
		tags = append([]language.Tag{language.Make(domain.DefaultLocale)}, tags...)
	}
	t.tags = tags
	t.matcher = language.NewMatcher(tags)
	return t
}

// Locales returns the locales that have a loaded tree, default first.
func (t *Translator) Locales() []string {
	out := make([]string, len(t.locales))
	copy(out, t.locales)
	return out
}

// Resolve looks key up in the locale tree, then in the default locale
// tree. It reports false when neither walk ends on a string.
func (t *Translator) Resolve(locale, key string) (string, bool) {
	node, ok := t.trees[locale].Lookup(key)
	if !ok {
		node, ok = t.trees[domain.DefaultLocale].Lookup(key)
		if !ok {
			return "", false
		}
	}
	return node.Text()
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	text, ok := t.Resolve(locale, key)
	if !ok {
		return key
	}
	return Interpolate(text, data)
}

// MatchLocale maps a BCP 47 tag to the closest loaded locale. Unknown or
// malformed tags map to the default locale.
func (t *Translator) MatchLocale(tag string) string {
	if tag == "" {
		return domain.DefaultLocale
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return domain.DefaultLocale
	}
	_, idx, conf := t.matcher.Match(parsed)
	if conf == language.No {
		return domain.DefaultLocale
	}
	base, _ := t.tags[idx].Base()
	if locale := base.String(); domain.IsSupportedLocale(locale) {
		return locale
	}
	return domain.DefaultLocale
}
