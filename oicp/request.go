package oicp

import "encoding/xml"

// Pull requests sent by the provider side. GeoCoordinatesResponseFormat is
// pinned to DecimalDegree, the only alternative this codec decodes.

type pullEvseDataRequestXML struct {
	XMLName                      xml.Name `xml:"eRoamingPullEvseData"`
	ProviderID                   string   `xml:"ProviderID"`
	GeoCoordinatesResponseFormat string   `xml:"GeoCoordinatesResponseFormat"`
}

type pullEvseStatusRequestXML struct {
	XMLName    xml.Name `xml:"eRoamingPullEvseStatus"`
	ProviderID string   `xml:"ProviderID"`
}

func EncodePullEvseDataRequest(providerID string) ([]byte, error) {
	id, err := ParseOperatorID(providerID)
	if err != nil {
		return nil, err
	}
	return marshalSOAP(&pullEvseDataRequestXML{
		ProviderID:                   id.String(),
		GeoCoordinatesResponseFormat: "DecimalDegree",
	})
}

func EncodePullEvseStatusRequest(providerID string) ([]byte, error) {
	id, err := ParseOperatorID(providerID)
	if err != nil {
		return nil, err
	}
	return marshalSOAP(&pullEvseStatusRequestXML{ProviderID: id.String()})
}
