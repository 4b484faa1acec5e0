package i18n

// LoadEmbeddedTree exposes the embedded locale documents to external tests.
func LoadEmbeddedTree(locale string) (*Node, error) {
	return loadTree(localeFS, "active."+locale+".toml")
}
