package domain

// Supported locales. English is the default and the fallback for any
// missing translation.
const (
	LocaleEnglish = "en"
	LocaleGerman  = "de"
	LocaleSpanish = "es"

	DefaultLocale = LocaleEnglish
)

var supportedLocales = []string{LocaleEnglish, LocaleGerman, LocaleSpanish}

// SupportedLocales returns the supported locales, default first.
func SupportedLocales() []string {
	out := make([]string, len(supportedLocales))
	copy(out, supportedLocales)
	return out
}

func IsSupportedLocale(locale string) bool {
	for _, l := range supportedLocales {
		if l == locale {
			return true
		}
	}
	return false
}
