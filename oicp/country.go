package oicp

import (
	"strings"

	"github.com/biter777/countries"
)

// CountryUnknown is the only non-ISO country value the schema admits.
const CountryUnknown = "unknown"

// resolveCountry maps a wire country value (alpha-2, alpha-3 or plain name)
// to its ISO 3166-1 alpha-3 code. The literal "unknown" passes through.
func resolveCountry(s string) (string, error) {
	v := strings.TrimSpace(s)
	if strings.EqualFold(v, CountryUnknown) {
		return CountryUnknown, nil
	}
	c := countries.ByName(v)
	if c == countries.Unknown {
		return "", &UnknownCountryError{Code: s}
	}
	return c.Alpha3(), nil
}

// Countries whose primary language tag is not the lowercased alpha-2 code.
var countryLanguages = map[string]string{
	"GBR": "en",
	"USA": "en",
	"IRL": "en",
	"AUS": "en",
	"CAN": "en",
	"NZL": "en",
	"AUT": "de",
	"CHE": "de",
	"BEL": "nl",
	"LUX": "fr",
	"SWE": "sv",
	"DNK": "da",
	"NOR": "no",
	"UKR": "uk",
	"CZE": "cs",
	"GRC": "el",
	"ESP": "es",
	"PRT": "pt",
	"SVN": "sl",
	"SVK": "sk",
	"EST": "et",
	"MEX": "es",
	"BRA": "pt",
	"CHN": "zh",
	"JPN": "ja",
	"KOR": "ko",
}

var languageCountries = map[string]string{}

func init() {
	for alpha3, lang := range countryLanguages {
		if _, ok := languageCountries[lang]; !ok {
			languageCountries[lang] = alpha3
		}
	}
	// preferred representatives where several countries share a language
	languageCountries["en"] = "GBR"
	languageCountries["de"] = "DEU"
	languageCountries["fr"] = "FRA"
	languageCountries["nl"] = "NLD"
	languageCountries["es"] = "ESP"
	languageCountries["pt"] = "PRT"
}

// languageForCountry returns the ISO 639-1 language tag used for display
// texts of the given country. Falls back to the lowercased alpha-2 code,
// which matches for most of Europe (DEU→de, FRA→fr, ITA→it, …).
func languageForCountry(alpha3 string) string {
	if alpha3 == "" || strings.EqualFold(alpha3, CountryUnknown) {
		return "en"
	}
	key := strings.ToUpper(alpha3)
	if lang, ok := countryLanguages[key]; ok {
		return lang
	}
	c := countries.ByName(key)
	if c == countries.Unknown {
		return "en"
	}
	return strings.ToLower(c.Alpha2())
}

// countryForLanguage is the inverse used when packing multi-language text.
func countryForLanguage(lang string) string {
	key := strings.ToLower(lang)
	if alpha3, ok := languageCountries[key]; ok {
		return alpha3
	}
	c := countries.ByName(key)
	if c == countries.Unknown {
		return "GBR"
	}
	return c.Alpha3()
}
