package discord

import "yogabot/internal/domain"

// DomainErrorMessage resolves err to a user-facing message through the
// "errors.<code>" translation keys. Errors without a domain code get the
// generic message.
func DomainErrorMessage(t Translate, err error) string {
	if err == nil {
		return ""
	}
	if code := domain.Code(err); code != "" {
		return t("errors."+code, nil)
	}
	return t("errors.generic", nil)
}
