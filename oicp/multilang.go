package oicp

import (
	"strings"

	"evroam/models"
)

// The legacy EnAdditionalInfo field packs several languages into one text:
// "DEU:Hinweis|||GBR:Note|||". A text without the delimiter is plain
// English. Both conventions are reproduced on encode.

const packDelimiter = "|||"

// ParsePackedText splits a packed multi-language text into per-language
// entries. Tokens with an unusable country code are skipped.
func ParsePackedText(s string) models.MultiLanguageText {
	out := models.MultiLanguageText{}
	if !strings.Contains(s, packDelimiter) {
		if strings.TrimSpace(s) != "" {
			out["en"] = s
		}
		return out
	}
	for _, token := range strings.Split(s, packDelimiter) {
		if strings.TrimSpace(token) == "" {
			continue
		}
		sep := strings.Index(token, ":")
		if sep <= 0 {
			continue
		}
		code := strings.TrimSpace(token[:sep])
		if _, err := resolveCountry(code); err != nil {
			continue
		}
		out[languageForCountry(code)] = token[sep+1:]
	}
	return out
}

// PackText is the inverse: a single English entry stays plain text, all
// other shapes use the delimiter convention with a trailing delimiter per
// token.
func PackText(t models.MultiLanguageText) string {
	if len(t) == 0 {
		return ""
	}
	if len(t) == 1 {
		if text, ok := t["en"]; ok {
			return text
		}
	}
	var b strings.Builder
	for _, lang := range t.Languages() {
		b.WriteString(countryForLanguage(lang))
		b.WriteString(":")
		b.WriteString(t[lang])
		b.WriteString(packDelimiter)
	}
	return b.String()
}
