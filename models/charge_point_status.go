package models

import "evroam/types"

// ChargePointStatus is the operational state of one EVSE, built fresh on
// every status pull.
type ChargePointStatus struct {
	EvseID string               `json:"evse_id" validate:"required"`
	Status types.EvseStatusType `json:"status" validate:"required"`
}
