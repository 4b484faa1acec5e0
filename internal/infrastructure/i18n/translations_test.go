package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewTranslatorFS(t *testing.T) {
	t.Parallel()

	t.Run("missing default locale fails", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"active.de.toml": {Data: []byte(`greeting = "Hallo"`)},
		}
		_, err := newTranslatorFS(fsys, zap.NewNop())
		require.Error(t, err)
	})

	t.Run("malformed default locale fails", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"active.en.toml": {Data: []byte(`greeting = `)},
		}
		_, err := newTranslatorFS(fsys, zap.NewNop())
		require.Error(t, err)
	})

	t.Run("broken secondary locale falls back", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"active.en.toml": {Data: []byte("greeting = \"Hello\"\n[nested]\nkey = \"Deep\"\n")},
			"active.de.toml": {Data: []byte(`greeting = `)},
			"active.es.toml": {Data: []byte(`greeting = "Hola"`)},
		}
		tr, err := newTranslatorFS(fsys, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, []string{"en", "es"}, tr.Locales())
		assert.Equal(t, "Hello", tr.T("de", "greeting", nil))
		assert.Equal(t, "Hola", tr.T("es", "greeting", nil))
		assert.Equal(t, "Deep", tr.T("es", "nested.key", nil))
	})
}
