package oicp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"evroam/models"
)

func TestParsePackedText(t *testing.T) {
	out := ParsePackedText("DEU:Achtung|||GBR:Attention|||")
	assert.Len(t, out, 2)
	assert.Equal(t, "Achtung", out.Get("de"))
	assert.Equal(t, "Attention", out.Get("en"))
}

func TestParsePackedTextPlainEnglish(t *testing.T) {
	out := ParsePackedText("Hello")
	assert.Len(t, out, 1)
	assert.Equal(t, "Hello", out.Get("en"))
}

func TestParsePackedTextSkipsBadTokens(t *testing.T) {
	out := ParsePackedText("DEU:gut|||XXX:bad|||nocolon|||")
	assert.Len(t, out, 1)
	assert.Equal(t, "gut", out.Get("de"))
}

func TestParsePackedTextEmpty(t *testing.T) {
	assert.Empty(t, ParsePackedText(""))
	assert.Empty(t, ParsePackedText("   "))
}

func TestPackTextSingleEnglishStaysPlain(t *testing.T) {
	assert.Equal(t, "Hello", PackText(models.MultiLanguageText{"en": "Hello"}))
}

func TestPackTextMultiLanguage(t *testing.T) {
	packed := PackText(models.MultiLanguageText{"de": "Achtung", "en": "Attention"})
	assert.Equal(t, "DEU:Achtung|||GBR:Attention|||", packed)
}

func TestPackParseRoundTrip(t *testing.T) {
	in := models.MultiLanguageText{"de": "A", "en": "B", "fr": "C"}
	assert.Equal(t, in, ParsePackedText(PackText(in)))
}
