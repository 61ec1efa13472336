package types

import "fmt"

// enumTable maps wire strings back to enum values. Since the enum constants
// are the wire strings themselves, one table covers both directions; the
// constructor rejects duplicate wire strings so every variant keeps exactly
// one representation.
type enumTable[T ~string] struct {
	values map[string]T
}

func newEnumTable[T ~string](values ...T) enumTable[T] {
	t := enumTable[T]{values: make(map[string]T, len(values))}
	for _, v := range values {
		if _, ok := t.values[string(v)]; ok {
			panic(fmt.Sprintf("duplicate wire string %q", string(v)))
		}
		t.values[string(v)] = v
	}
	return t
}

func (t enumTable[T]) parse(s string, fallback T) T {
	if v, ok := t.values[s]; ok {
		return v
	}
	return fallback
}

var (
	plugTypes = newEnumTable(
		PlugTypeSmallPaddleInductive, PlugTypeLargePaddleInductive,
		PlugTypeAVCONConnector, PlugTypeTeslaConnector, PlugTypeNEMA520,
		PlugTypeTypeEFrenchStandard, PlugTypeTypeFSchuko,
		PlugTypeTypeGBritishStandard, PlugTypeTypeJSwissStandard,
		PlugTypeType1ConnectorCable, PlugTypeType2Outlet,
		PlugTypeType2ConnectorCable, PlugTypeType3Outlet,
		PlugTypeIEC60309SinglePhase, PlugTypeIEC60309ThreePhase,
		PlugTypeCCSCombo2PlugCable, PlugTypeCCSCombo1PlugCable,
		PlugTypeCHAdeMO, PlugTypeUnspecified,
	)
	chargingFacilities = newEnumTable(
		ChargingFacility100To120V1PhaseMax10A, ChargingFacility100To120V1PhaseMax16A,
		ChargingFacility100To120V1PhaseMax32A, ChargingFacility200To240V1PhaseMax10A,
		ChargingFacility200To240V1PhaseMax16A, ChargingFacility200To240V1PhaseMax32A,
		ChargingFacility200To240V1PhaseOver32A, ChargingFacility380To480V3PhaseMax16A,
		ChargingFacility380To480V3PhaseMax32A, ChargingFacility380To480V3PhaseMax63A,
		ChargingFacilityBatteryExchange, ChargingFacilityDCMax20KW,
		ChargingFacilityDCMax50KW, ChargingFacilityDCOver50KW,
		ChargingFacilityUnspecified,
	)
	chargingModes = newEnumTable(
		ChargingModeMode1, ChargingModeMode2, ChargingModeMode3,
		ChargingModeMode4, ChargingModeCHAdeMO, ChargingModeUnspecified,
	)
	authenticationModes = newEnumTable(
		AuthenticationModeNFCRFIDClassic, AuthenticationModeNFCRFIDDESFire,
		AuthenticationModePnC, AuthenticationModeRemote,
		AuthenticationModeDirectPayment, AuthenticationModeUnspecified,
	)
	paymentOptions = newEnumTable(
		PaymentOptionNoPayment, PaymentOptionDirect, PaymentOptionContract,
		PaymentOptionUnspecified,
	)
	accessibilities = newEnumTable(
		AccessibilityFreePubliclyAccessible, AccessibilityRestrictedAccessibility,
		AccessibilityPayingPubliclyAccessible, AccessibilityTestStation,
		AccessibilityUnspecified,
	)
	valueAddedServices = newEnumTable(
		ValueAddedServiceReservation, ValueAddedServiceDynamicPricing,
		ValueAddedServiceParkingSensors, ValueAddedServiceMaximumPowerCharging,
		ValueAddedServicePredictiveChargePointUsage, ValueAddedServiceChargingPlans,
		ValueAddedServiceNone,
	)
	evseStatusTypes = newEnumTable(
		EvseStatusAvailable, EvseStatusReserved, EvseStatusOccupied,
		EvseStatusOutOfService, EvseStatusEvseNotFound, EvseStatusUnknown,
	)
	deltaTypes = newEnumTable(DeltaTypeInsert, DeltaTypeUpdate, DeltaTypeDelete)
)

func ParsePlugType(s string) PlugType {
	return plugTypes.parse(s, PlugTypeUnspecified)
}

func ParseChargingFacility(s string) ChargingFacility {
	return chargingFacilities.parse(s, ChargingFacilityUnspecified)
}

func ParseChargingMode(s string) ChargingMode {
	return chargingModes.parse(s, ChargingModeUnspecified)
}

func ParseAuthenticationMode(s string) AuthenticationMode {
	return authenticationModes.parse(s, AuthenticationModeUnspecified)
}

func ParsePaymentOption(s string) PaymentOption {
	return paymentOptions.parse(s, PaymentOptionUnspecified)
}

func ParseAccessibility(s string) Accessibility {
	return accessibilities.parse(s, AccessibilityUnspecified)
}

func ParseValueAddedService(s string) ValueAddedService {
	return valueAddedServices.parse(s, ValueAddedServiceNone)
}

func ParseEvseStatusType(s string) EvseStatusType {
	return evseStatusTypes.parse(s, EvseStatusUnknown)
}

// ParseDeltaType has no sentinel in the schema; an unknown value is
// reported as-is so the caller can decide to drop it.
func ParseDeltaType(s string) (DeltaType, bool) {
	v, ok := deltaTypes.values[s]
	return v, ok
}
