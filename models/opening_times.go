package models

// AlwaysOpen is the lenient default applied when a feed reports a station
// as not open around the clock but omits the opening time text.
const AlwaysOpen = "always open"

// OpeningTimes is either "open 24 hours" or a free-text opening expression.
type OpeningTimes struct {
	Open24Hours bool   `json:"open_24_hours"`
	Text        string `json:"text,omitempty"`
}

func Open24Hours() OpeningTimes {
	return OpeningTimes{Open24Hours: true}
}

func OpenAt(text string) OpeningTimes {
	if text == "" {
		text = AlwaysOpen
	}
	return OpeningTimes{Text: text}
}
