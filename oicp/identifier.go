package oicp

import (
	"regexp"
	"strings"
)

// Identifier grammar of the EVSE data schema. ISO ids carry a two-letter
// country code, a three-character party id and a marker letter naming the
// entity level: E for a charge point, S for a charging station, P for a
// charging pool. DIN ids are purely numeric with a leading country calling
// code and have no station or pool form.

var (
	operatorISOPattern = regexp.MustCompile(`^([A-Za-z]{2})\*?([A-Za-z0-9]{3})$`)
	operatorDINPattern = regexp.MustCompile(`^(\+?[0-9]{1,3})\*([0-9]{3,6})$`)

	evseISOPattern    = regexp.MustCompile(`^([A-Za-z]{2})\*?([A-Za-z0-9]{3})\*?E([A-Za-z0-9\*]{1,30})$`)
	evseDINPattern    = regexp.MustCompile(`^(\+?[0-9]{1,3})\*([0-9]{3,6})\*([0-9\*]{1,32})$`)
	stationISOPattern = regexp.MustCompile(`^([A-Za-z]{2})\*?([A-Za-z0-9]{3})\*?S([A-Za-z0-9\*]{1,30})$`)
	poolISOPattern    = regexp.MustCompile(`^([A-Za-z]{2})\*?([A-Za-z0-9]{3})\*?P([A-Za-z0-9\*]{1,30})$`)

	suffixSanitizer = regexp.MustCompile(`[^A-Za-z0-9\*]+`)
)

type OperatorID struct {
	countryCode string
	partyID     string
	din         bool
}

func ParseOperatorID(s string) (OperatorID, error) {
	v := strings.TrimSpace(s)
	if m := operatorISOPattern.FindStringSubmatch(v); m != nil {
		return OperatorID{countryCode: strings.ToUpper(m[1]), partyID: strings.ToUpper(m[2])}, nil
	}
	if m := operatorDINPattern.FindStringSubmatch(v); m != nil {
		return OperatorID{countryCode: m[1], partyID: m[2], din: true}, nil
	}
	return OperatorID{}, &InvalidIdentifierError{Kind: "operator", Value: s}
}

// String renders the canonical form: "DE*ABC" for ISO, "+49*822" for DIN.
func (id OperatorID) String() string {
	return id.countryCode + "*" + id.partyID
}

// Compact renders the ISO form without separator, "DEABC". DIN ids have no
// compact form and keep the canonical rendering.
func (id OperatorID) Compact() string {
	if id.din {
		return id.String()
	}
	return id.countryCode + id.partyID
}

func (id OperatorID) IsZero() bool {
	return id.countryCode == ""
}

type EvseID struct {
	operator OperatorID
	suffix   string
	din      bool
	raw      string
}

func ParseEvseID(s string) (EvseID, error) {
	v := strings.TrimSpace(s)
	if m := evseISOPattern.FindStringSubmatch(v); m != nil {
		op := OperatorID{countryCode: strings.ToUpper(m[1]), partyID: strings.ToUpper(m[2])}
		return EvseID{operator: op, suffix: m[3], raw: v}, nil
	}
	if m := evseDINPattern.FindStringSubmatch(v); m != nil {
		op := OperatorID{countryCode: m[1], partyID: m[2], din: true}
		return EvseID{operator: op, suffix: m[3], din: true, raw: v}, nil
	}
	return EvseID{}, &InvalidIdentifierError{Kind: "evse", Value: s}
}

// String keeps the wire spelling so encoded records match the feed.
func (id EvseID) String() string {
	return id.raw
}

func (id EvseID) Operator() OperatorID {
	return id.operator
}

// StationEquivalent replaces the charge-point marker with the station
// marker: DE*ABC*E1234*5 becomes DE*ABC*S1234*5. DIN ids carry no marker
// to replace.
func (id EvseID) StationEquivalent() (StationID, error) {
	if id.din {
		return StationID{}, &InvalidIdentifierError{Kind: "station", Value: id.raw}
	}
	return StationID{operator: id.operator, suffix: id.suffix}, nil
}

// PoolEquivalent derives the pool id for the site hosting this charge
// point. The last sub-segment of the point suffix numbers the point within
// its site, so it is stripped when present.
func (id EvseID) PoolEquivalent() (PoolID, error) {
	if id.din {
		return PoolID{}, &InvalidIdentifierError{Kind: "pool", Value: id.raw}
	}
	suffix := id.suffix
	if segs := strings.Split(suffix, "*"); len(segs) > 1 {
		suffix = strings.Join(segs[:len(segs)-1], "*")
	}
	return PoolID{operator: id.operator, suffix: suffix}, nil
}

type StationID struct {
	operator OperatorID
	suffix   string
}

func ParseStationID(s string) (StationID, error) {
	v := strings.TrimSpace(s)
	if m := stationISOPattern.FindStringSubmatch(v); m != nil {
		op := OperatorID{countryCode: strings.ToUpper(m[1]), partyID: strings.ToUpper(m[2])}
		return StationID{operator: op, suffix: m[3]}, nil
	}
	return StationID{}, &InvalidIdentifierError{Kind: "station", Value: s}
}

func (id StationID) String() string {
	return id.operator.String() + "*S" + id.suffix
}

func (id StationID) Operator() OperatorID {
	return id.operator
}

type PoolID struct {
	operator OperatorID
	suffix   string
}

func ParsePoolID(s string) (PoolID, error) {
	v := strings.TrimSpace(s)
	if m := poolISOPattern.FindStringSubmatch(v); m != nil {
		op := OperatorID{countryCode: strings.ToUpper(m[1]), partyID: strings.ToUpper(m[2])}
		return PoolID{operator: op, suffix: m[3]}, nil
	}
	return PoolID{}, &InvalidIdentifierError{Kind: "pool", Value: s}
}

func (id PoolID) String() string {
	return id.operator.String() + "*P" + id.suffix
}

// Free-text prefix conventions under which feeds spell their operator id
// in front of a station name.
const (
	prefixFormatStar    = "star"    // DE*ABC*<text>
	prefixFormatDash    = "dash"    // DE*ABC-<text>
	prefixFormatCompact = "compact" // DEABC<text>
)

// MatchOperatorPrefix reports whether the free text starts with the
// operator id in one of the three known spellings and returns the
// remainder after the prefix and its separator.
func MatchOperatorPrefix(op OperatorID, freeText string) (rest string, format string, ok bool) {
	text := strings.TrimSpace(freeText)
	upper := strings.ToUpper(text)
	if prefix := op.String() + "*"; strings.HasPrefix(upper, prefix) {
		return text[len(prefix):], prefixFormatStar, true
	}
	if prefix := op.String() + "-"; strings.HasPrefix(upper, prefix) {
		return text[len(prefix):], prefixFormatDash, true
	}
	if prefix := op.Compact(); !op.din && strings.HasPrefix(upper, prefix) {
		return text[len(prefix):], prefixFormatCompact, true
	}
	return "", "", false
}

// SynthesizeStationID builds a station id from an operator prefix match by
// inserting the station marker after the operator segment. The remainder
// is reduced to the characters the station grammar allows; nothing usable
// left means the caller keeps the station unresolved.
func SynthesizeStationID(op OperatorID, rest string) (StationID, bool) {
	if op.din {
		return StationID{}, false
	}
	trimmed := strings.TrimLeft(rest, "*- ")
	if len(trimmed) > 1 && (trimmed[0] == 'S' || trimmed[0] == 's') {
		if id, err := ParseStationID(op.String() + "*" + strings.ToUpper(trimmed[:1]) + trimmed[1:]); err == nil {
			return id, true
		}
	}
	suffix := suffixSanitizer.ReplaceAllString(trimmed, "")
	suffix = strings.Trim(suffix, "*")
	if suffix == "" {
		return StationID{}, false
	}
	if len(suffix) > 30 {
		suffix = suffix[:30]
	}
	return StationID{operator: op, suffix: suffix}, true
}
