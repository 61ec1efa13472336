package oicp

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"evroam/internal"
	"evroam/models"
	"evroam/types"
)

// Envelope decoding is resilient per record: a malformed member is dropped
// and logged, the group survives. A message carrying neither payload nor
// status code fails as a whole.

const (
	NamespaceCommonTypes  = "http://www.hubject.com/b2b/services/commontypes/v2.0"
	NamespaceEvseData     = "http://www.hubject.com/b2b/services/evsedata/v2.0"
	NamespaceEvseStatus   = "http://www.hubject.com/b2b/services/evsestatus/v2.0"
	NamespaceDataLicenses = "http://www.hubject.com/b2b/services/datalicenses/v1.0"
)

// OperatorEvseData groups the charge-point records of one operator.
type OperatorEvseData struct {
	OperatorID   string
	OperatorName string
	Records      []models.ChargePointRecord
}

// OperatorEvseStatus groups the status records of one operator.
type OperatorEvseStatus struct {
	OperatorID   string
	OperatorName string
	Statuses     []models.ChargePointStatus
}

// EvseData is the decoded data-pull envelope.
type EvseData struct {
	Operators  []OperatorEvseData
	StatusCode *StatusCode
}

// Status resolves the implied success when the wire carried no status code.
func (d *EvseData) Status() StatusCode {
	if d.StatusCode == nil {
		return Success()
	}
	return *d.StatusCode
}

// EvseStatuses is the decoded status-pull envelope.
type EvseStatuses struct {
	Operators  []OperatorEvseStatus
	StatusCode *StatusCode
}

func (d *EvseStatuses) Status() StatusCode {
	if d.StatusCode == nil {
		return Success()
	}
	return *d.StatusCode
}

type evseDataEnvelopeXML struct {
	XMLName    xml.Name         `xml:"eRoamingEvseData"`
	EvseData   *evseDataListXML `xml:"EvseData"`
	StatusCode *statusCodeXML   `xml:"StatusCode"`
}

type evseDataListXML struct {
	Operators []operatorEvseDataXML `xml:"OperatorEvseData"`
}

type operatorEvseDataXML struct {
	OperatorID   *string             `xml:"OperatorID"`
	OperatorName *string             `xml:"OperatorName,omitempty"`
	Records      []evseDataRecordXML `xml:"EvseDataRecord"`
}

type evseStatusEnvelopeXML struct {
	XMLName      xml.Name           `xml:"eRoamingEvseStatus"`
	EvseStatuses *evseStatusListXML `xml:"EvseStatuses"`
	StatusCode   *statusCodeXML     `xml:"StatusCode"`
}

type evseStatusListXML struct {
	Operators []operatorEvseStatusXML `xml:"OperatorEvseStatus"`
}

type operatorEvseStatusXML struct {
	OperatorID   *string               `xml:"OperatorID"`
	OperatorName *string               `xml:"OperatorName,omitempty"`
	Records      []evseStatusRecordXML `xml:"EvseStatusRecord"`
}

type evseStatusRecordXML struct {
	EvseID     *string `xml:"EvseId"`
	EvseStatus *string `xml:"EvseStatus"`
}

type soapEnvelopeXML struct {
	XMLName xml.Name    `xml:"Envelope"`
	Body    soapBodyXML `xml:"Body"`
}

type soapBodyXML struct {
	EvseData   *evseDataEnvelopeXML   `xml:"eRoamingEvseData"`
	EvseStatus *evseStatusEnvelopeXML `xml:"eRoamingEvseStatus"`
}

// Codec decodes and encodes the data-pull and status-pull envelopes.
// Operations are pure transforms; a Codec is safe for concurrent use on
// independent inputs.
type Codec struct {
	log internal.LogHandler
}

func NewCodec(log internal.LogHandler) *Codec {
	return &Codec{log: log}
}

func (c *Codec) warn(text string) {
	if c.log != nil {
		c.log.Warn(text)
	}
}

// DecodeEvseData reads a data-pull response, with or without its SOAP
// envelope.
func (c *Codec) DecodeEvseData(r io.Reader) (*EvseData, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading evse data: %w", err)
	}
	var payload evseDataEnvelopeXML
	if err = unmarshalPayload(raw, "eRoamingEvseData", &payload, func(b soapBodyXML) any {
		if b.EvseData == nil {
			return nil
		}
		return b.EvseData
	}, func(v any) { payload = *(v.(*evseDataEnvelopeXML)) }); err != nil {
		return nil, err
	}

	if payload.EvseData == nil && payload.StatusCode == nil {
		return nil, &MissingPayloadError{Envelope: "eRoamingEvseData"}
	}

	out := &EvseData{}
	if payload.StatusCode != nil {
		status, err := decodeStatusCode(payload.StatusCode)
		if err != nil {
			return nil, err
		}
		out.StatusCode = &status
	}
	if payload.EvseData == nil {
		return out, nil
	}
	for _, opx := range payload.EvseData.Operators {
		group, err := c.decodeOperatorData(&opx)
		if err != nil {
			return nil, err
		}
		out.Operators = append(out.Operators, *group)
	}
	return out, nil
}

func (c *Codec) decodeOperatorData(x *operatorEvseDataXML) (*OperatorEvseData, error) {
	rawID, err := requiredText("OperatorID", x.OperatorID)
	if err != nil {
		return nil, err
	}
	opID, err := ParseOperatorID(rawID)
	if err != nil {
		return nil, err
	}
	group := &OperatorEvseData{
		OperatorID:   opID.String(),
		OperatorName: optionalText(x.OperatorName, ""),
	}
	for i := range x.Records {
		rec, err := decodeRecord(&x.Records[i])
		if err != nil {
			// best effort over the batch: drop the record, keep the group
			c.warn(fmt.Sprintf("operator %s: dropping record %s: %v",
				group.OperatorID, optionalText(x.Records[i].EvseID, "?"), err))
			continue
		}
		group.Records = append(group.Records, rec)
	}
	return group, nil
}

// DecodeEvseStatuses reads a status-pull response, with or without its
// SOAP envelope.
func (c *Codec) DecodeEvseStatuses(r io.Reader) (*EvseStatuses, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading evse statuses: %w", err)
	}
	var payload evseStatusEnvelopeXML
	if err = unmarshalPayload(raw, "eRoamingEvseStatus", &payload, func(b soapBodyXML) any {
		if b.EvseStatus == nil {
			return nil
		}
		return b.EvseStatus
	}, func(v any) { payload = *(v.(*evseStatusEnvelopeXML)) }); err != nil {
		return nil, err
	}

	if payload.EvseStatuses == nil && payload.StatusCode == nil {
		return nil, &MissingPayloadError{Envelope: "eRoamingEvseStatus"}
	}

	out := &EvseStatuses{}
	if payload.StatusCode != nil {
		status, err := decodeStatusCode(payload.StatusCode)
		if err != nil {
			return nil, err
		}
		out.StatusCode = &status
	}
	if payload.EvseStatuses == nil {
		return out, nil
	}
	for _, opx := range payload.EvseStatuses.Operators {
		group, err := c.decodeOperatorStatus(&opx)
		if err != nil {
			return nil, err
		}
		out.Operators = append(out.Operators, *group)
	}
	return out, nil
}

func (c *Codec) decodeOperatorStatus(x *operatorEvseStatusXML) (*OperatorEvseStatus, error) {
	rawID, err := requiredText("OperatorID", x.OperatorID)
	if err != nil {
		return nil, err
	}
	opID, err := ParseOperatorID(rawID)
	if err != nil {
		return nil, err
	}
	group := &OperatorEvseStatus{
		OperatorID:   opID.String(),
		OperatorName: optionalText(x.OperatorName, ""),
	}
	for i := range x.Records {
		rawEvse, err := requiredText("EvseId", x.Records[i].EvseID)
		if err != nil {
			c.warn(fmt.Sprintf("operator %s: dropping status record: %v", group.OperatorID, err))
			continue
		}
		evseID, err := ParseEvseID(rawEvse)
		if err != nil {
			c.warn(fmt.Sprintf("operator %s: dropping status record: %v", group.OperatorID, err))
			continue
		}
		group.Statuses = append(group.Statuses, models.ChargePointStatus{
			EvseID: evseID.String(),
			Status: types.ParseEvseStatusType(optionalText(x.Records[i].EvseStatus, "")),
		})
	}
	return group, nil
}

// unmarshalPayload accepts both a SOAP-wrapped document and the bare
// payload element; namespace prefixes are irrelevant, matching is by local
// name.
func unmarshalPayload(raw []byte, envelope string, direct any, fromBody func(soapBodyXML) any, assign func(any)) error {
	var soap soapEnvelopeXML
	if err := xml.Unmarshal(raw, &soap); err == nil {
		if payload := fromBody(soap.Body); payload != nil {
			assign(payload)
			return nil
		}
		return &MissingPayloadError{Envelope: envelope}
	}
	if err := xml.Unmarshal(raw, direct); err != nil {
		return fmt.Errorf("parsing %s: %w", envelope, err)
	}
	return nil
}

// EncodeEvseData serializes a data-pull response into a SOAP document. An
// operator whose records all fail to serialize is omitted entirely.
func (c *Codec) EncodeEvseData(data *EvseData) ([]byte, error) {
	payload := evseDataEnvelopeXML{}
	var operators []operatorEvseDataXML
	for i := range data.Operators {
		op := &data.Operators[i]
		opID, err := ParseOperatorID(op.OperatorID)
		if err != nil {
			return nil, err
		}
		opx := operatorEvseDataXML{}
		id := opID.String()
		opx.OperatorID = &id
		if op.OperatorName != "" {
			name := op.OperatorName
			opx.OperatorName = &name
		}
		for j := range op.Records {
			recx, err := encodeRecord(&op.Records[j])
			if err != nil {
				c.warn(fmt.Sprintf("operator %s: skipping record %s: %v", id, op.Records[j].EvseID, err))
				continue
			}
			opx.Records = append(opx.Records, *recx)
		}
		if len(opx.Records) == 0 {
			continue
		}
		operators = append(operators, opx)
	}
	if len(operators) > 0 {
		payload.EvseData = &evseDataListXML{Operators: operators}
	}
	if data.StatusCode != nil {
		payload.StatusCode = encodeStatusCode(*data.StatusCode)
	} else if payload.EvseData == nil {
		payload.StatusCode = encodeStatusCode(Success())
	}
	return marshalSOAP(&payload)
}

// EncodeEvseStatuses serializes a status-pull response into a SOAP
// document.
func (c *Codec) EncodeEvseStatuses(data *EvseStatuses) ([]byte, error) {
	payload := evseStatusEnvelopeXML{}
	var operators []operatorEvseStatusXML
	for i := range data.Operators {
		op := &data.Operators[i]
		opID, err := ParseOperatorID(op.OperatorID)
		if err != nil {
			return nil, err
		}
		opx := operatorEvseStatusXML{}
		id := opID.String()
		opx.OperatorID = &id
		if op.OperatorName != "" {
			name := op.OperatorName
			opx.OperatorName = &name
		}
		for j := range op.Statuses {
			st := &op.Statuses[j]
			evseID, err := ParseEvseID(st.EvseID)
			if err != nil {
				c.warn(fmt.Sprintf("operator %s: skipping status %s: %v", id, st.EvseID, err))
				continue
			}
			eid := evseID.String()
			status := string(st.Status)
			opx.Records = append(opx.Records, evseStatusRecordXML{EvseID: &eid, EvseStatus: &status})
		}
		if len(opx.Records) == 0 {
			continue
		}
		operators = append(operators, opx)
	}
	if len(operators) > 0 {
		payload.EvseStatuses = &evseStatusListXML{Operators: operators}
	}
	if data.StatusCode != nil {
		payload.StatusCode = encodeStatusCode(*data.StatusCode)
	} else if payload.EvseStatuses == nil {
		payload.StatusCode = encodeStatusCode(Success())
	}
	return marshalSOAP(&payload)
}

// marshalSOAP wraps the payload in the SOAP envelope declaring all four
// protocol namespaces, whichever sub-schema the body uses.
func marshalSOAP(payload any) ([]byte, error) {
	body, err := xml.MarshalIndent(payload, "    ", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling payload: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString(`<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/"`)
	buf.WriteString("\n    xmlns:CommonTypes=\"" + NamespaceCommonTypes + "\"")
	buf.WriteString("\n    xmlns:EVSEData=\"" + NamespaceEvseData + "\"")
	buf.WriteString("\n    xmlns:EVSEStatus=\"" + NamespaceEvseStatus + "\"")
	buf.WriteString("\n    xmlns:DataLicenses=\"" + NamespaceDataLicenses + "\">\n")
	buf.WriteString("  <soapenv:Body>\n")
	buf.Write(body)
	buf.WriteString("\n  </soapenv:Body>\n</soapenv:Envelope>\n")
	return buf.Bytes(), nil
}
