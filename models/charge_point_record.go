package models

import (
	"time"

	"evroam/types"
)

// ChargePointRecord is the decoded EVSE data record. The codec builds it
// once; later enrichment produces a new value instead of mutating a shared
// one.
type ChargePointRecord struct {
	EvseID               string                     `json:"evse_id" validate:"required"`
	DeltaType            types.DeltaType            `json:"delta_type,omitempty"`
	LastUpdate           *time.Time                 `json:"last_update,omitempty"`
	ChargingStationID    string                     `json:"charging_station_id,omitempty"`
	ChargingStationName  MultiLanguageText          `json:"charging_station_name,omitempty"`
	Address              Address                    `json:"address" validate:"required"`
	GeoLocation          GeoLocation                `json:"geo_location" validate:"required"`
	Plugs                []types.PlugType           `json:"plugs" validate:"required,min=1"`
	ChargingFacilities   []types.ChargingFacility   `json:"charging_facilities,omitempty"`
	ChargingModes        []types.ChargingMode       `json:"charging_modes,omitempty"`
	AuthenticationModes  []types.AuthenticationMode `json:"authentication_modes" validate:"required,min=1"`
	MaxCapacity          *float64                   `json:"max_capacity,omitempty" validate:"omitempty,gte=0"`
	PaymentOptions       []types.PaymentOption      `json:"payment_options,omitempty"`
	ValueAddedServices   []types.ValueAddedService  `json:"value_added_services,omitempty"`
	Accessibility        types.Accessibility        `json:"accessibility" validate:"required"`
	HotlinePhoneNumber   string                     `json:"hotline_phone_number" validate:"required"`
	AdditionalInfo       MultiLanguageText          `json:"additional_info,omitempty"`
	EntranceLocation     *GeoLocation               `json:"entrance_location,omitempty"`
	OpeningTimes         OpeningTimes               `json:"opening_times"`
	HubOperatorID        string                     `json:"hub_operator_id,omitempty"`
	ClearinghouseID      string                     `json:"clearinghouse_id,omitempty"`
	IsHubjectCompatible  bool                       `json:"is_hubject_compatible"`
	DynamicInfoAvailable bool                       `json:"dynamic_info_available"`
}
