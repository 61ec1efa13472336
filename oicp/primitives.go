package oicp

import (
	"fmt"
	"strconv"
	"strings"
)

// Element readers with the three access modes of the schema: required,
// optional with default, optional nullable. A nil pointer means the
// element was absent from the wire.

func requiredText(tag string, v *string) (string, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return "", &MissingRequiredElementError{Tag: tag}
	}
	return strings.TrimSpace(*v), nil
}

func optionalText(v *string, def string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return def
	}
	return strings.TrimSpace(*v)
}

func optionalTextPtr(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	s := strings.TrimSpace(*v)
	return &s
}

func requiredBool(tag string, v *string) (bool, error) {
	s, err := requiredText(tag, v)
	if err != nil {
		return false, err
	}
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("element %s: %q is not a boolean literal", tag, s)
}

// optionalBoolDefaultTrue models the DynamicInfoAvailable convention: the
// flag holds unless the feed literally says "false".
func optionalBoolDefaultTrue(v *string) bool {
	return optionalText(v, "") != "false"
}

// parseDecimal accepts dot-separated decimals only, independent of the
// host locale.
func parseDecimal(tag, s string) (float64, error) {
	v := strings.TrimSpace(s)
	if strings.ContainsAny(v, ",") {
		return 0, fmt.Errorf("element %s: %q does not use the dot decimal separator", tag, s)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("element %s: %w", tag, err)
	}
	return f, nil
}

func requiredDecimal(tag string, v *string) (float64, error) {
	s, err := requiredText(tag, v)
	if err != nil {
		return 0, err
	}
	return parseDecimal(tag, s)
}

func optionalDecimalPtr(tag string, v *string) (*float64, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, nil
	}
	f, err := parseDecimal(tag, *v)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// formatCoordinate serializes with a dot separator and six decimal places
// regardless of host locale.
func formatCoordinate(f float64) string {
	return strconv.FormatFloat(f, 'f', 6, 64)
}

func formatDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
