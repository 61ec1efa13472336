package oicp

import (
	"evroam/models"
)

// GeoCoordinates is a choice group: exactly one of the three alternatives
// must be populated. Google and DegreeMinuteSeconds are part of the schema
// but not of this implementation; they are rejected explicitly instead of
// being defaulted away.

type geoCoordinatesXML struct {
	Google              *googleCoordinatesXML   `xml:"Google,omitempty"`
	DecimalDegree       *decimalDegreeXML       `xml:"DecimalDegree,omitempty"`
	DegreeMinuteSeconds *degreeMinuteSecondsXML `xml:"DegreeMinuteSeconds,omitempty"`
}

type googleCoordinatesXML struct {
	Coordinates string `xml:"Coordinates"`
}

type decimalDegreeXML struct {
	Longitude string `xml:"Longitude"`
	Latitude  string `xml:"Latitude"`
}

type degreeMinuteSecondsXML struct {
	Longitude string `xml:"Longitude"`
	Latitude  string `xml:"Latitude"`
}

func decodeGeo(context string, g *geoCoordinatesXML) (models.GeoLocation, error) {
	var loc models.GeoLocation
	count := 0
	if g.Google != nil {
		count++
	}
	if g.DecimalDegree != nil {
		count++
	}
	if g.DegreeMinuteSeconds != nil {
		count++
	}
	if count != 1 {
		return loc, &InvalidChoiceGroupError{Context: context, Count: count}
	}
	if g.Google != nil {
		return loc, &NotImplementedError{Feature: context + "/Google"}
	}
	if g.DegreeMinuteSeconds != nil {
		return loc, &NotImplementedError{Feature: context + "/DegreeMinuteSeconds"}
	}
	lat, err := parseDecimal(context+"/DecimalDegree/Latitude", g.DecimalDegree.Latitude)
	if err != nil {
		return loc, err
	}
	lon, err := parseDecimal(context+"/DecimalDegree/Longitude", g.DecimalDegree.Longitude)
	if err != nil {
		return loc, err
	}
	loc.Latitude = lat
	loc.Longitude = lon
	return loc, nil
}

func encodeGeo(loc models.GeoLocation) *geoCoordinatesXML {
	return &geoCoordinatesXML{
		DecimalDegree: &decimalDegreeXML{
			Longitude: formatCoordinate(loc.Longitude),
			Latitude:  formatCoordinate(loc.Latitude),
		},
	}
}
