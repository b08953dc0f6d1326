package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	t.Cleanup(func() { SetLang("en") })

	SetLang("ru_RU.UTF-8")
	assert.Equal(t, "ru", Lang())
	assert.Equal(t, "Фокус", T("Focus"))
	assert.Equal(t, "Unknown key", T("Unknown key"))

	SetLang("pt-BR")
	assert.Equal(t, "Pausa curta", T("Short Break"))

	SetLang("en-US")
	assert.Equal(t, "Long Break", T("Long Break"))
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	t.Cleanup(func() { SetLang("en") })

	SetLang("ja-JP")

	assert.Equal(t, "en", Lang())
	assert.Equal(t, "Focus", T("Focus"))
}

func TestDetectHonoursOverride(t *testing.T) {
	t.Setenv(EnvLang, "es")
	assert.Equal(t, "es", Detect())
}
