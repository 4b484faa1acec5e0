package application

import (
	"sync"

	"yogabot/internal/domain"
	"yogabot/internal/ports/output"
)

// Localizer binds a translator to an active locale that can be switched
// at runtime. Switching does not touch strings already rendered; callers
// re-invoke T to get text in the new locale.
type Localizer struct {
	translator output.T

	mu     sync.RWMutex
	locale string
}

// NewLocalizer returns a Localizer bound to locale, or to the default
// locale when locale is not supported.
func NewLocalizer(translator output.T, locale string) *Localizer {
	if !domain.IsSupportedLocale(locale) {
		locale = domain.DefaultLocale
	}
	return &Localizer{translator: translator, locale: locale}
}

func (l *Localizer) Locale() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.locale
}

// SetLocale switches the active locale.
func (l *Localizer) SetLocale(locale string) error {
	if !domain.IsSupportedLocale(locale) {
		return domain.ErrUnsupportedLocale
	}
	l.mu.Lock()
	l.locale = locale
	l.mu.Unlock()
	return nil
}

// T renders key in the active locale.
func (l *Localizer) T(key string, data map[string]any) string {
	return l.translator.T(l.Locale(), key, data)
}
