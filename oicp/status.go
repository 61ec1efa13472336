package oicp

import (
	"fmt"
	"strconv"
	"strings"
)

// StatusCode is the uniform result element of every response. Code 0 means
// success; -1 marks a locally synthesized transport or parse failure that
// never came off the wire.
type StatusCode struct {
	Code           int16  `json:"code"`
	Description    string `json:"description,omitempty"`
	AdditionalInfo string `json:"additional_info,omitempty"`
}

func (s StatusCode) HasResult() bool {
	return s.Code == 0
}

func Success() StatusCode {
	return StatusCode{Code: 0, Description: "Success"}
}

// LocalFault marks a failure produced on this side of the wire.
func LocalFault(description string) StatusCode {
	return StatusCode{Code: -1, Description: description}
}

type statusCodeXML struct {
	Code           string  `xml:"Code"`
	Description    *string `xml:"Description,omitempty"`
	AdditionalInfo *string `xml:"AdditionalInfo,omitempty"`
}

func decodeStatusCode(x *statusCodeXML) (StatusCode, error) {
	code, err := strconv.ParseInt(strings.TrimSpace(x.Code), 10, 16)
	if err != nil {
		return StatusCode{}, fmt.Errorf("element StatusCode/Code: %w", err)
	}
	return StatusCode{
		Code:           int16(code),
		Description:    optionalText(x.Description, ""),
		AdditionalInfo: optionalText(x.AdditionalInfo, ""),
	}, nil
}

func encodeStatusCode(s StatusCode) *statusCodeXML {
	// wire codes are three digits, locally synthesized negatives stay plain
	code := strconv.Itoa(int(s.Code))
	if s.Code >= 0 {
		code = fmt.Sprintf("%03d", s.Code)
	}
	x := &statusCodeXML{Code: code}
	if s.Description != "" {
		d := s.Description
		x.Description = &d
	}
	if s.AdditionalInfo != "" {
		a := s.AdditionalInfo
		x.AdditionalInfo = &a
	}
	return x
}
