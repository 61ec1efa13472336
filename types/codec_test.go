package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKnownWireStrings(t *testing.T) {
	assert.Equal(t, PlugTypeType2Outlet, ParsePlugType("Type 2 Outlet"))
	assert.Equal(t, ChargingModeMode3, ParseChargingMode("Mode_3"))
	assert.Equal(t, AuthenticationModeRemote, ParseAuthenticationMode("REMOTE"))
	assert.Equal(t, PaymentOptionContract, ParsePaymentOption("Contract"))
	assert.Equal(t, AccessibilityFreePubliclyAccessible, ParseAccessibility("Free publicly accessible"))
	assert.Equal(t, EvseStatusOccupied, ParseEvseStatusType("Occupied"))
}

func TestParseUnknownWireStringsFallBack(t *testing.T) {
	assert.Equal(t, PlugTypeUnspecified, ParsePlugType("Warp Core"))
	assert.Equal(t, ChargingFacilityUnspecified, ParseChargingFacility(""))
	assert.Equal(t, AccessibilityUnspecified, ParseAccessibility("Members only"))
	assert.Equal(t, EvseStatusUnknown, ParseEvseStatusType("Exploded"))
	assert.Equal(t, ValueAddedServiceNone, ParseValueAddedService(""))
}

func TestParseDeltaType(t *testing.T) {
	v, ok := ParseDeltaType("update")
	assert.True(t, ok)
	assert.Equal(t, DeltaTypeUpdate, v)

	_, ok = ParseDeltaType("upsert")
	assert.False(t, ok)
}
