package models

import "sort"

// MultiLanguageText holds one text per ISO 639-1 language tag.
// Language Code ISO 639-1. No markup, html etc. allowed.
type MultiLanguageText map[string]string

func (t MultiLanguageText) Get(lang string) string {
	return t[lang]
}

// Languages returns the language tags in stable order.
func (t MultiLanguageText) Languages() []string {
	langs := make([]string, 0, len(t))
	for lang := range t {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

func (t MultiLanguageText) IsEmpty() bool {
	return len(t) == 0
}
