package oicp

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evroam/models"
	"evroam/types"
)

const fullRecordXML = `<EvseDataRecord deltaType="update" lastUpdate="2023-04-02T10:00:00Z">
  <EvseId>DE*ABC*E1234*5</EvseId>
  <ChargingStationId>DE*ABC*S1234</ChargingStationId>
  <ChargingStationName>Ladestation Ostbahnhof</ChargingStationName>
  <EnChargingStationName>East Station</EnChargingStationName>
  <Address>
    <Country>DEU</Country>
    <City>München</City>
    <Street>Haager Straße</Street>
    <PostalCode>81671</PostalCode>
    <HouseNum>12</HouseNum>
  </Address>
  <GeoCoordinates>
    <DecimalDegree>
      <Longitude>11.615500</Longitude>
      <Latitude>48.123700</Latitude>
    </DecimalDegree>
  </GeoCoordinates>
  <Plugs>
    <Plug>Type 2 Outlet</Plug>
    <Plug>CHAdeMO</Plug>
  </Plugs>
  <ChargingModes>
    <ChargingMode>Mode_3</ChargingMode>
  </ChargingModes>
  <AuthenticationModes>
    <AuthenticationMode>NFC RFID Classic</AuthenticationMode>
    <AuthenticationMode>REMOTE</AuthenticationMode>
  </AuthenticationModes>
  <MaxCapacity>22</MaxCapacity>
  <PaymentOptions>
    <PaymentOption>Contract</PaymentOption>
  </PaymentOptions>
  <Accessibility>Free publicly accessible</Accessibility>
  <HotlinePhoneNum>+498912345678</HotlinePhoneNum>
  <AdditionalInfo>Zufahrt über Hinterhof</AdditionalInfo>
  <EnAdditionalInfo>DEU:Zufahrt über Hinterhof|||GBR:Access via backyard|||</EnAdditionalInfo>
  <GeoChargingPointEntrance>
    <DecimalDegree>
      <Longitude>11.615600</Longitude>
      <Latitude>48.123800</Latitude>
    </DecimalDegree>
  </GeoChargingPointEntrance>
  <IsOpen24Hours>true</IsOpen24Hours>
  <HubOperatorID>DE*HUB</HubOperatorID>
  <ClearinghouseID>TEST-CH-1</ClearinghouseID>
  <IsHubjectCompatible>true</IsHubjectCompatible>
  <DynamicInfoAvailable>true</DynamicInfoAvailable>
</EvseDataRecord>`

func parseRecordXML(t *testing.T, doc string) *evseDataRecordXML {
	t.Helper()
	var x evseDataRecordXML
	require.NoError(t, xml.Unmarshal([]byte(doc), &x))
	return &x
}

func TestDecodeFullRecord(t *testing.T) {
	rec, err := decodeRecord(parseRecordXML(t, fullRecordXML))
	require.NoError(t, err)

	assert.Equal(t, "DE*ABC*E1234*5", rec.EvseID)
	assert.Equal(t, types.DeltaTypeUpdate, rec.DeltaType)
	require.NotNil(t, rec.LastUpdate)
	assert.Equal(t, "DE*ABC*S1234", rec.ChargingStationID)
	assert.Equal(t, "Ladestation Ostbahnhof", rec.ChargingStationName.Get("de"))
	assert.Equal(t, "East Station", rec.ChargingStationName.Get("en"))

	assert.Equal(t, "DEU", rec.Address.Country)
	assert.Equal(t, "de", rec.Address.Language)
	assert.Equal(t, "München", rec.Address.City)
	assert.Equal(t, "81671", rec.Address.PostalCode)

	assert.Equal(t, 48.1237, rec.GeoLocation.Latitude)
	assert.Equal(t, 11.6155, rec.GeoLocation.Longitude)
	require.NotNil(t, rec.EntranceLocation)
	assert.Equal(t, 48.1238, rec.EntranceLocation.Latitude)

	assert.Equal(t, []types.PlugType{types.PlugTypeType2Outlet, types.PlugTypeCHAdeMO}, rec.Plugs)
	assert.Equal(t, []types.AuthenticationMode{
		types.AuthenticationModeNFCRFIDClassic, types.AuthenticationModeRemote,
	}, rec.AuthenticationModes)
	require.NotNil(t, rec.MaxCapacity)
	assert.Equal(t, 22.0, *rec.MaxCapacity)
	assert.Equal(t, types.AccessibilityFreePubliclyAccessible, rec.Accessibility)

	assert.Equal(t, "Zufahrt über Hinterhof", rec.AdditionalInfo.Get("de"))
	assert.Equal(t, "Access via backyard", rec.AdditionalInfo.Get("en"))

	assert.True(t, rec.OpeningTimes.Open24Hours)
	assert.Equal(t, "DE*HUB", rec.HubOperatorID)
	assert.Equal(t, "TEST-CH-1", rec.ClearinghouseID)
	assert.True(t, rec.IsHubjectCompatible)
	assert.True(t, rec.DynamicInfoAvailable)
}

func TestDecodeRecordRoundTrip(t *testing.T) {
	first, err := decodeRecord(parseRecordXML(t, fullRecordXML))
	require.NoError(t, err)

	encoded, err := encodeRecord(&first)
	require.NoError(t, err)
	raw, err := xml.Marshal(encoded)
	require.NoError(t, err)

	second, err := decodeRecord(parseRecordXML(t, string(raw)))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDecodeRecordRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		remove string
	}{
		{"missing evse id", "<EvseId>DE*ABC*E1234*5</EvseId>"},
		{"missing accessibility", "<Accessibility>Free publicly accessible</Accessibility>"},
		{"missing hotline", "<HotlinePhoneNum>+498912345678</HotlinePhoneNum>"},
		{"missing 24h flag", "<IsOpen24Hours>true</IsOpen24Hours>"},
		{"missing compat flag", "<IsHubjectCompatible>true</IsHubjectCompatible>"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := stripElement(fullRecordXML, tc.remove)
			_, err := decodeRecord(parseRecordXML(t, doc))
			var target *MissingRequiredElementError
			require.ErrorAs(t, err, &target)
		})
	}
}

func TestDecodeRecordEmptyPlugsFails(t *testing.T) {
	doc := replaceElement(fullRecordXML,
		"<Plugs>\n    <Plug>Type 2 Outlet</Plug>\n    <Plug>CHAdeMO</Plug>\n  </Plugs>",
		"<Plugs></Plugs>")
	_, err := decodeRecord(parseRecordXML(t, doc))
	var target *EmptyRequiredSetError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "Plugs", target.Tag)
}

func TestDecodeRecordEmptyAuthenticationModesFails(t *testing.T) {
	doc := replaceElement(fullRecordXML,
		"<AuthenticationModes>\n    <AuthenticationMode>NFC RFID Classic</AuthenticationMode>\n    <AuthenticationMode>REMOTE</AuthenticationMode>\n  </AuthenticationModes>",
		"<AuthenticationModes/>")
	_, err := decodeRecord(parseRecordXML(t, doc))
	var target *EmptyRequiredSetError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "AuthenticationModes", target.Tag)
}

func TestDecodeRecordUnknownCountry(t *testing.T) {
	doc := replaceElement(fullRecordXML, "<Country>DEU</Country>", "<Country>Atlantis</Country>")
	_, err := decodeRecord(parseRecordXML(t, doc))
	var target *UnknownCountryError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "Atlantis", target.Code)
}

func TestDecodeRecordCountryUnknownLiteral(t *testing.T) {
	doc := replaceElement(fullRecordXML, "<Country>DEU</Country>", "<Country>unknown</Country>")
	rec, err := decodeRecord(parseRecordXML(t, doc))
	require.NoError(t, err)
	assert.Equal(t, "unknown", rec.Address.Country)
	assert.Equal(t, "en", rec.Address.Language)
}

func TestDecodeRecordMalformedEvseID(t *testing.T) {
	doc := replaceElement(fullRecordXML, "<EvseId>DE*ABC*E1234*5</EvseId>", "<EvseId>garbage</EvseId>")
	_, err := decodeRecord(parseRecordXML(t, doc))
	var target *InvalidIdentifierError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "evse", target.Kind)
}

func TestDecodeRecordLenientOpeningTime(t *testing.T) {
	doc := replaceElement(fullRecordXML, "<IsOpen24Hours>true</IsOpen24Hours>", "<IsOpen24Hours>false</IsOpen24Hours>")
	rec, err := decodeRecord(parseRecordXML(t, doc))
	require.NoError(t, err)
	assert.False(t, rec.OpeningTimes.Open24Hours)
	assert.Equal(t, models.AlwaysOpen, rec.OpeningTimes.Text)
}

func TestDecodeRecordInvalidHubOperatorDropped(t *testing.T) {
	doc := replaceElement(fullRecordXML, "<HubOperatorID>DE*HUB</HubOperatorID>", "<HubOperatorID>not-an-operator-id</HubOperatorID>")
	rec, err := decodeRecord(parseRecordXML(t, doc))
	require.NoError(t, err)
	assert.Empty(t, rec.HubOperatorID)
}

func TestDecodeRecordUnknownEnumsBecomeUnspecified(t *testing.T) {
	doc := replaceElement(fullRecordXML, "<Plug>CHAdeMO</Plug>", "<Plug>Warp Core</Plug>")
	rec, err := decodeRecord(parseRecordXML(t, doc))
	require.NoError(t, err)
	assert.Equal(t, types.PlugTypeUnspecified, rec.Plugs[1])
}

func TestDecodeRecordDynamicInfoDefaultsTrue(t *testing.T) {
	doc := stripElement(fullRecordXML, "<DynamicInfoAvailable>true</DynamicInfoAvailable>")
	rec, err := decodeRecord(parseRecordXML(t, doc))
	require.NoError(t, err)
	assert.True(t, rec.DynamicInfoAvailable)

	doc = replaceElement(fullRecordXML, "<DynamicInfoAvailable>true</DynamicInfoAvailable>", "<DynamicInfoAvailable>false</DynamicInfoAvailable>")
	rec, err = decodeRecord(parseRecordXML(t, doc))
	require.NoError(t, err)
	assert.False(t, rec.DynamicInfoAvailable)
}

func TestEncodeScrubsHotline(t *testing.T) {
	rec, err := decodeRecord(parseRecordXML(t, fullRecordXML))
	require.NoError(t, err)
	rec.HotlinePhoneNumber = "+49 (89) 1234-5678"
	encoded, err := encodeRecord(&rec)
	require.NoError(t, err)
	require.NotNil(t, encoded.HotlinePhoneNum)
	assert.Equal(t, "+498912345678", *encoded.HotlinePhoneNum)
}

func TestEncodeTruncatesStationName(t *testing.T) {
	rec, err := decodeRecord(parseRecordXML(t, fullRecordXML))
	require.NoError(t, err)
	long := "0123456789012345678901234567890123456789012345678901234567890"
	rec.ChargingStationName = models.MultiLanguageText{"en": long}
	encoded, err := encodeRecord(&rec)
	require.NoError(t, err)
	require.NotNil(t, encoded.EnChargingStationName)
	assert.Len(t, *encoded.EnChargingStationName, 50)
}

func TestEncodeEmptyPlugsFails(t *testing.T) {
	rec, err := decodeRecord(parseRecordXML(t, fullRecordXML))
	require.NoError(t, err)
	rec.Plugs = nil
	_, err = encodeRecord(&rec)
	var target *EmptyRequiredSetError
	require.ErrorAs(t, err, &target)
}
