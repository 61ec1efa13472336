package oicp

import "fmt"

// Decode failures carry the offending tag or value so a feed operator can
// be told exactly which element of which record was rejected.

type MissingRequiredElementError struct {
	Tag string
}

func (e *MissingRequiredElementError) Error() string {
	return fmt.Sprintf("missing required element %s", e.Tag)
}

type InvalidChoiceGroupError struct {
	Context string
	Count   int
}

func (e *InvalidChoiceGroupError) Error() string {
	return fmt.Sprintf("%s: choice group must have exactly one alternative, got %d", e.Context, e.Count)
}

type EmptyRequiredSetError struct {
	Tag string
}

func (e *EmptyRequiredSetError) Error() string {
	return fmt.Sprintf("required set %s is empty", e.Tag)
}

type UnknownCountryError struct {
	Code string
}

func (e *UnknownCountryError) Error() string {
	return fmt.Sprintf("unknown country %q", e.Code)
}

type InvalidIdentifierError struct {
	Kind  string
	Value string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid %s identifier %q", e.Kind, e.Value)
}

type NotImplementedError struct {
	Feature string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s is not implemented", e.Feature)
}

// MissingPayloadError reports a response carrying neither a data element
// nor a status code.
type MissingPayloadError struct {
	Envelope string
}

func (e *MissingPayloadError) Error() string {
	return fmt.Sprintf("%s carries neither payload nor status code", e.Envelope)
}
