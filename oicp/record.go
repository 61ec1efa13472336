package oicp

import (
	"encoding/xml"
	"regexp"
	"strings"
	"time"

	"evroam/models"
	"evroam/types"
)

const lastUpdateLayout = time.RFC3339

// displayNameLimit caps charging station display names per language.
const displayNameLimit = 50

var nonDigit = regexp.MustCompile(`[^0-9]`)

type evseDataRecordXML struct {
	XMLName                  xml.Name                `xml:"EvseDataRecord"`
	DeltaType                string                  `xml:"deltaType,attr,omitempty"`
	LastUpdate               string                  `xml:"lastUpdate,attr,omitempty"`
	EvseID                   *string                 `xml:"EvseId"`
	ChargingStationID        *string                 `xml:"ChargingStationId,omitempty"`
	ChargingStationName      *string                 `xml:"ChargingStationName,omitempty"`
	EnChargingStationName    *string                 `xml:"EnChargingStationName,omitempty"`
	Address                  *addressXML             `xml:"Address"`
	GeoCoordinates           *geoCoordinatesXML      `xml:"GeoCoordinates"`
	Plugs                    *plugsXML               `xml:"Plugs"`
	ChargingFacilities       *chargingFacilitiesXML  `xml:"ChargingFacilities,omitempty"`
	ChargingModes            *chargingModesXML       `xml:"ChargingModes,omitempty"`
	AuthenticationModes      *authenticationModesXML `xml:"AuthenticationModes"`
	MaxCapacity              *string                 `xml:"MaxCapacity,omitempty"`
	PaymentOptions           *paymentOptionsXML      `xml:"PaymentOptions,omitempty"`
	ValueAddedServices       *valueAddedServicesXML  `xml:"ValueAddedServices,omitempty"`
	Accessibility            *string                 `xml:"Accessibility"`
	HotlinePhoneNum          *string                 `xml:"HotlinePhoneNum"`
	AdditionalInfo           *string                 `xml:"AdditionalInfo,omitempty"`
	EnAdditionalInfo         *string                 `xml:"EnAdditionalInfo,omitempty"`
	GeoChargingPointEntrance *geoCoordinatesXML      `xml:"GeoChargingPointEntrance,omitempty"`
	IsOpen24Hours            *string                 `xml:"IsOpen24Hours"`
	OpeningTime              *string                 `xml:"OpeningTime,omitempty"`
	HubOperatorID            *string                 `xml:"HubOperatorID,omitempty"`
	ClearinghouseID          *string                 `xml:"ClearinghouseID,omitempty"`
	IsHubjectCompatible      *string                 `xml:"IsHubjectCompatible"`
	DynamicInfoAvailable     *string                 `xml:"DynamicInfoAvailable,omitempty"`
}

type addressXML struct {
	Country    *string `xml:"Country"`
	City       *string `xml:"City"`
	Street     *string `xml:"Street"`
	PostalCode *string `xml:"PostalCode,omitempty"`
	HouseNum   *string `xml:"HouseNum,omitempty"`
	Floor      *string `xml:"Floor,omitempty"`
	Region     *string `xml:"Region,omitempty"`
	TimeZone   *string `xml:"TimeZone,omitempty"`
}

type plugsXML struct {
	Plug []string `xml:"Plug"`
}

type chargingFacilitiesXML struct {
	ChargingFacility []string `xml:"ChargingFacility"`
}

type chargingModesXML struct {
	ChargingMode []string `xml:"ChargingMode"`
}

type authenticationModesXML struct {
	AuthenticationMode []string `xml:"AuthenticationMode"`
}

type paymentOptionsXML struct {
	PaymentOption []string `xml:"PaymentOption"`
}

type valueAddedServicesXML struct {
	ValueAddedService []string `xml:"ValueAddedService"`
}

var clearinghouseIDPattern = regexp.MustCompile(`^[A-Za-z0-9\*\-\+ ]{1,50}$`)

func decodeRecord(x *evseDataRecordXML) (models.ChargePointRecord, error) {
	var rec models.ChargePointRecord

	rawEvseID, err := requiredText("EvseId", x.EvseID)
	if err != nil {
		return rec, err
	}
	evseID, err := ParseEvseID(rawEvseID)
	if err != nil {
		return rec, err
	}
	rec.EvseID = evseID.String()

	if dt, ok := types.ParseDeltaType(x.DeltaType); ok {
		rec.DeltaType = dt
	}
	if x.LastUpdate != "" {
		if t, err := time.Parse(lastUpdateLayout, x.LastUpdate); err == nil {
			rec.LastUpdate = &t
		}
	}

	rec.ChargingStationID = optionalText(x.ChargingStationID, "")

	if x.Address == nil {
		return rec, &MissingRequiredElementError{Tag: "Address"}
	}
	if rec.Address, err = decodeAddress(x.Address); err != nil {
		return rec, err
	}

	rec.ChargingStationName = decodeStationName(x, rec.Address.Language)

	if x.GeoCoordinates == nil {
		return rec, &MissingRequiredElementError{Tag: "GeoCoordinates"}
	}
	if rec.GeoLocation, err = decodeGeo("GeoCoordinates", x.GeoCoordinates); err != nil {
		return rec, err
	}

	if x.Plugs == nil || len(x.Plugs.Plug) == 0 {
		return rec, &EmptyRequiredSetError{Tag: "Plugs"}
	}
	for _, p := range x.Plugs.Plug {
		rec.Plugs = append(rec.Plugs, types.ParsePlugType(p))
	}

	if x.ChargingFacilities != nil {
		for _, f := range x.ChargingFacilities.ChargingFacility {
			rec.ChargingFacilities = append(rec.ChargingFacilities, types.ParseChargingFacility(f))
		}
	}
	if x.ChargingModes != nil {
		for _, m := range x.ChargingModes.ChargingMode {
			rec.ChargingModes = append(rec.ChargingModes, types.ParseChargingMode(m))
		}
	}

	if x.AuthenticationModes == nil || len(x.AuthenticationModes.AuthenticationMode) == 0 {
		return rec, &EmptyRequiredSetError{Tag: "AuthenticationModes"}
	}
	for _, m := range x.AuthenticationModes.AuthenticationMode {
		rec.AuthenticationModes = append(rec.AuthenticationModes, types.ParseAuthenticationMode(m))
	}

	if rec.MaxCapacity, err = optionalDecimalPtr("MaxCapacity", x.MaxCapacity); err != nil {
		return rec, err
	}

	if x.PaymentOptions != nil {
		for _, o := range x.PaymentOptions.PaymentOption {
			rec.PaymentOptions = append(rec.PaymentOptions, types.ParsePaymentOption(o))
		}
	}
	if x.ValueAddedServices != nil {
		for _, s := range x.ValueAddedServices.ValueAddedService {
			rec.ValueAddedServices = append(rec.ValueAddedServices, types.ParseValueAddedService(s))
		}
	}

	accessibility, err := requiredText("Accessibility", x.Accessibility)
	if err != nil {
		return rec, err
	}
	rec.Accessibility = types.ParseAccessibility(accessibility)

	if rec.HotlinePhoneNumber, err = requiredText("HotlinePhoneNum", x.HotlinePhoneNum); err != nil {
		return rec, err
	}

	rec.AdditionalInfo = decodeAdditionalInfo(x, rec.Address.Language)

	if x.GeoChargingPointEntrance != nil {
		loc, err := decodeGeo("GeoChargingPointEntrance", x.GeoChargingPointEntrance)
		if err != nil {
			return rec, err
		}
		rec.EntranceLocation = &loc
	}

	open24, err := requiredBool("IsOpen24Hours", x.IsOpen24Hours)
	if err != nil {
		return rec, err
	}
	if open24 {
		rec.OpeningTimes = models.Open24Hours()
	} else {
		// the legacy feed omits OpeningTime at times; default leniently
		rec.OpeningTimes = models.OpenAt(optionalText(x.OpeningTime, ""))
	}

	// invalid hub operator and clearing house ids are dropped, not fatal
	if raw := optionalText(x.HubOperatorID, ""); raw != "" {
		if op, err := ParseOperatorID(raw); err == nil {
			rec.HubOperatorID = op.String()
		}
	}
	if raw := optionalText(x.ClearinghouseID, ""); raw != "" && clearinghouseIDPattern.MatchString(raw) {
		rec.ClearinghouseID = raw
	}

	if rec.IsHubjectCompatible, err = requiredBool("IsHubjectCompatible", x.IsHubjectCompatible); err != nil {
		return rec, err
	}
	rec.DynamicInfoAvailable = optionalBoolDefaultTrue(x.DynamicInfoAvailable)

	if err = rec.Validate(); err != nil {
		return rec, err
	}
	return rec, nil
}

func decodeAddress(x *addressXML) (models.Address, error) {
	var addr models.Address
	country, err := requiredText("Address/Country", x.Country)
	if err != nil {
		return addr, err
	}
	if addr.Country, err = resolveCountry(country); err != nil {
		return addr, err
	}
	addr.Language = languageForCountry(addr.Country)
	if addr.City, err = requiredText("Address/City", x.City); err != nil {
		return addr, err
	}
	if addr.Street, err = requiredText("Address/Street", x.Street); err != nil {
		return addr, err
	}
	addr.PostalCode = optionalText(x.PostalCode, "")
	addr.HouseNum = optionalText(x.HouseNum, "")
	addr.Floor = optionalText(x.Floor, "")
	addr.Region = optionalText(x.Region, "")
	addr.TimeZone = optionalText(x.TimeZone, "")
	return addr, nil
}

func decodeStationName(x *evseDataRecordXML, localLang string) models.MultiLanguageText {
	name := models.MultiLanguageText{}
	if v := optionalText(x.ChargingStationName, ""); v != "" {
		name[localLang] = v
	}
	if v := optionalText(x.EnChargingStationName, ""); v != "" {
		name["en"] = v
	}
	if len(name) == 0 {
		return nil
	}
	return name
}

func decodeAdditionalInfo(x *evseDataRecordXML, localLang string) models.MultiLanguageText {
	info := models.MultiLanguageText{}
	if v := optionalText(x.AdditionalInfo, ""); v != "" {
		info[localLang] = v
	}
	if x.EnAdditionalInfo != nil {
		for lang, text := range ParsePackedText(*x.EnAdditionalInfo) {
			info[lang] = text
		}
	}
	if len(info) == 0 {
		return nil
	}
	return info
}

func encodeRecord(rec *models.ChargePointRecord) (*evseDataRecordXML, error) {
	evseID, err := ParseEvseID(rec.EvseID)
	if err != nil {
		return nil, err
	}
	if len(rec.Plugs) == 0 {
		return nil, &EmptyRequiredSetError{Tag: "Plugs"}
	}
	if len(rec.AuthenticationModes) == 0 {
		return nil, &EmptyRequiredSetError{Tag: "AuthenticationModes"}
	}

	x := &evseDataRecordXML{}
	x.DeltaType = string(rec.DeltaType)
	if rec.LastUpdate != nil {
		x.LastUpdate = rec.LastUpdate.Format(lastUpdateLayout)
	}
	id := evseID.String()
	x.EvseID = &id

	if rec.ChargingStationID != "" {
		v := rec.ChargingStationID
		x.ChargingStationID = &v
	}
	encodeStationName(x, rec)

	x.Address = encodeAddress(rec.Address)
	x.GeoCoordinates = encodeGeo(rec.GeoLocation)

	x.Plugs = &plugsXML{}
	for _, p := range rec.Plugs {
		x.Plugs.Plug = append(x.Plugs.Plug, string(p))
	}
	if len(rec.ChargingFacilities) > 0 {
		x.ChargingFacilities = &chargingFacilitiesXML{}
		for _, f := range rec.ChargingFacilities {
			x.ChargingFacilities.ChargingFacility = append(x.ChargingFacilities.ChargingFacility, string(f))
		}
	}
	if len(rec.ChargingModes) > 0 {
		x.ChargingModes = &chargingModesXML{}
		for _, m := range rec.ChargingModes {
			x.ChargingModes.ChargingMode = append(x.ChargingModes.ChargingMode, string(m))
		}
	}
	x.AuthenticationModes = &authenticationModesXML{}
	for _, m := range rec.AuthenticationModes {
		x.AuthenticationModes.AuthenticationMode = append(x.AuthenticationModes.AuthenticationMode, string(m))
	}
	if rec.MaxCapacity != nil {
		v := formatDecimal(*rec.MaxCapacity)
		x.MaxCapacity = &v
	}
	if len(rec.PaymentOptions) > 0 {
		x.PaymentOptions = &paymentOptionsXML{}
		for _, o := range rec.PaymentOptions {
			x.PaymentOptions.PaymentOption = append(x.PaymentOptions.PaymentOption, string(o))
		}
	}
	if len(rec.ValueAddedServices) > 0 {
		x.ValueAddedServices = &valueAddedServicesXML{}
		for _, s := range rec.ValueAddedServices {
			x.ValueAddedServices.ValueAddedService = append(x.ValueAddedServices.ValueAddedService, string(s))
		}
	}

	accessibility := string(rec.Accessibility)
	x.Accessibility = &accessibility

	hotline := scrubPhoneNumber(rec.HotlinePhoneNumber)
	if hotline == "" {
		return nil, &MissingRequiredElementError{Tag: "HotlinePhoneNum"}
	}
	x.HotlinePhoneNum = &hotline

	encodeAdditionalInfo(x, rec)

	if rec.EntranceLocation != nil {
		x.GeoChargingPointEntrance = encodeGeo(*rec.EntranceLocation)
	}

	open24 := "false"
	if rec.OpeningTimes.Open24Hours {
		open24 = "true"
	} else {
		text := rec.OpeningTimes.Text
		if text == "" {
			text = models.AlwaysOpen
		}
		x.OpeningTime = &text
	}
	x.IsOpen24Hours = &open24

	if rec.HubOperatorID != "" {
		v := rec.HubOperatorID
		x.HubOperatorID = &v
	}
	if rec.ClearinghouseID != "" {
		v := rec.ClearinghouseID
		x.ClearinghouseID = &v
	}

	compatible := "false"
	if rec.IsHubjectCompatible {
		compatible = "true"
	}
	x.IsHubjectCompatible = &compatible

	dynamic := "true"
	if !rec.DynamicInfoAvailable {
		dynamic = "false"
	}
	x.DynamicInfoAvailable = &dynamic

	return x, nil
}

func encodeAddress(addr models.Address) *addressXML {
	x := &addressXML{}
	country := addr.Country
	x.Country = &country
	city := addr.City
	x.City = &city
	street := addr.Street
	x.Street = &street
	x.PostalCode = optionalTextPtr(&addr.PostalCode)
	x.HouseNum = optionalTextPtr(&addr.HouseNum)
	x.Floor = optionalTextPtr(&addr.Floor)
	x.Region = optionalTextPtr(&addr.Region)
	x.TimeZone = optionalTextPtr(&addr.TimeZone)
	return x
}

func encodeStationName(x *evseDataRecordXML, rec *models.ChargePointRecord) {
	localLang := rec.Address.Language
	for lang, name := range rec.ChargingStationName {
		name = truncateName(name)
		v := name
		if lang == "en" {
			x.EnChargingStationName = &v
		}
		if lang == localLang && (lang != "en" || x.ChargingStationName == nil) {
			x.ChargingStationName = &v
		}
	}
}

func encodeAdditionalInfo(x *evseDataRecordXML, rec *models.ChargePointRecord) {
	if len(rec.AdditionalInfo) == 0 {
		return
	}
	localLang := rec.Address.Language
	rest := models.MultiLanguageText{}
	for lang, text := range rec.AdditionalInfo {
		if lang == localLang && lang != "en" {
			v := text
			x.AdditionalInfo = &v
			continue
		}
		rest[lang] = text
	}
	if len(rest) > 0 {
		packed := PackText(rest)
		x.EnAdditionalInfo = &packed
	}
}

func truncateName(name string) string {
	if len(name) <= displayNameLimit {
		return name
	}
	runes := []rune(name)
	if len(runes) <= displayNameLimit {
		return name
	}
	return string(runes[:displayNameLimit])
}

// scrubPhoneNumber keeps digits and a single leading plus sign.
func scrubPhoneNumber(s string) string {
	v := strings.TrimSpace(s)
	plus := strings.HasPrefix(v, "+")
	digits := nonDigit.ReplaceAllString(v, "")
	if plus && digits != "" {
		return "+" + digits
	}
	return digits
}
