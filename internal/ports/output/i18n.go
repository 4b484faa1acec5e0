package output

// T exposes a minimal i18n contract for user-facing messages.
// Implementations provide message lookup + templating for a given locale.
type T interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for {{name}} placeholders (may be nil).
	// A key missing from every locale is returned unchanged.
	T(locale, key string, data map[string]any) string
}

// Translator is T plus locale negotiation.
type Translator interface {
	T
	// MatchLocale maps a BCP 47 tag (e.g. "es-ES") to a supported locale.
	MatchLocale(tag string) string
}
