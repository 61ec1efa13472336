package types

// Wire enumerations of the OICP EVSE data and status schemas. Each enum
// carries its wire string as the constant value, so one table per enum
// serves lookup in both directions. Unknown wire strings decode to the
// Unspecified/Unknown sentinel of the enum, never to an error.

type PlugType string

const (
	PlugTypeSmallPaddleInductive PlugType = "Small Paddle Inductive"
	PlugTypeLargePaddleInductive PlugType = "Large Paddle Inductive"
	PlugTypeAVCONConnector       PlugType = "AVCON Connector"
	PlugTypeTeslaConnector       PlugType = "Tesla Connector"
	PlugTypeNEMA520              PlugType = "NEMA 5-20"
	PlugTypeTypeEFrenchStandard  PlugType = "Type E French Standard"
	PlugTypeTypeFSchuko          PlugType = "Type F Schuko"
	PlugTypeTypeGBritishStandard PlugType = "Type G British Standard"
	PlugTypeTypeJSwissStandard   PlugType = "Type J Swiss Standard"
	PlugTypeType1ConnectorCable  PlugType = "Type 1 Connector (Cable Attached)"
	PlugTypeType2Outlet          PlugType = "Type 2 Outlet"
	PlugTypeType2ConnectorCable  PlugType = "Type 2 Connector (Cable Attached)"
	PlugTypeType3Outlet          PlugType = "Type 3 Outlet"
	PlugTypeIEC60309SinglePhase  PlugType = "IEC 60309 Single Phase"
	PlugTypeIEC60309ThreePhase   PlugType = "IEC 60309 Three Phase"
	PlugTypeCCSCombo2PlugCable   PlugType = "CCS Combo 2 Plug (Cable Attached)"
	PlugTypeCCSCombo1PlugCable   PlugType = "CCS Combo 1 Plug (Cable Attached)"
	PlugTypeCHAdeMO              PlugType = "CHAdeMO"
	PlugTypeUnspecified          PlugType = "Unspecified"
)

type ChargingFacility string

const (
	ChargingFacility100To120V1PhaseMax10A  ChargingFacility = "100 - 120V, 1-Phase ≤10A"
	ChargingFacility100To120V1PhaseMax16A  ChargingFacility = "100 - 120V, 1-Phase ≤16A"
	ChargingFacility100To120V1PhaseMax32A  ChargingFacility = "100 - 120V, 1-Phase ≤32A"
	ChargingFacility200To240V1PhaseMax10A  ChargingFacility = "200 - 240V, 1-Phase ≤10A"
	ChargingFacility200To240V1PhaseMax16A  ChargingFacility = "200 - 240V, 1-Phase ≤16A"
	ChargingFacility200To240V1PhaseMax32A  ChargingFacility = "200 - 240V, 1-Phase ≤32A"
	ChargingFacility200To240V1PhaseOver32A ChargingFacility = "200 - 240V, 1-Phase >32A"
	ChargingFacility380To480V3PhaseMax16A  ChargingFacility = "380 - 480V, 3-Phase ≤16A"
	ChargingFacility380To480V3PhaseMax32A  ChargingFacility = "380 - 480V, 3-Phase ≤32A"
	ChargingFacility380To480V3PhaseMax63A  ChargingFacility = "380 - 480V, 3-Phase ≤63A"
	ChargingFacilityBatteryExchange        ChargingFacility = "Battery exchange"
	ChargingFacilityDCMax20KW              ChargingFacility = "DC Charging ≤20kW"
	ChargingFacilityDCMax50KW              ChargingFacility = "DC Charging ≤50kW"
	ChargingFacilityDCOver50KW             ChargingFacility = "DC Charging >50kW"
	ChargingFacilityUnspecified            ChargingFacility = "Unspecified"
)

type ChargingMode string

const (
	ChargingModeMode1       ChargingMode = "Mode_1"
	ChargingModeMode2       ChargingMode = "Mode_2"
	ChargingModeMode3       ChargingMode = "Mode_3"
	ChargingModeMode4       ChargingMode = "Mode_4"
	ChargingModeCHAdeMO     ChargingMode = "CHAdeMO"
	ChargingModeUnspecified ChargingMode = "Unspecified"
)

type AuthenticationMode string

const (
	AuthenticationModeNFCRFIDClassic AuthenticationMode = "NFC RFID Classic"
	AuthenticationModeNFCRFIDDESFire AuthenticationMode = "NFC RFID DESFire"
	AuthenticationModePnC            AuthenticationMode = "PnC"
	AuthenticationModeRemote         AuthenticationMode = "REMOTE"
	AuthenticationModeDirectPayment  AuthenticationMode = "Direct Payment"
	AuthenticationModeUnspecified    AuthenticationMode = "Unspecified"
)

type PaymentOption string

const (
	PaymentOptionNoPayment   PaymentOption = "No Payment"
	PaymentOptionDirect      PaymentOption = "Direct"
	PaymentOptionContract    PaymentOption = "Contract"
	PaymentOptionUnspecified PaymentOption = "Unspecified"
)

type Accessibility string

const (
	AccessibilityFreePubliclyAccessible   Accessibility = "Free publicly accessible"
	AccessibilityRestrictedAccessibility  Accessibility = "Restricted accessibility"
	AccessibilityPayingPubliclyAccessible Accessibility = "Paying publicly accessible"
	AccessibilityTestStation              Accessibility = "Test Station"
	AccessibilityUnspecified              Accessibility = "Unspecified"
)

type ValueAddedService string

const (
	ValueAddedServiceReservation                ValueAddedService = "Reservation"
	ValueAddedServiceDynamicPricing             ValueAddedService = "DynamicPricing"
	ValueAddedServiceParkingSensors             ValueAddedService = "ParkingSensors"
	ValueAddedServiceMaximumPowerCharging       ValueAddedService = "MaximumPowerCharging"
	ValueAddedServicePredictiveChargePointUsage ValueAddedService = "PredictiveChargePointUsage"
	ValueAddedServiceChargingPlans              ValueAddedService = "ChargingPlans"
	ValueAddedServiceNone                       ValueAddedService = "None"
)

type EvseStatusType string

const (
	EvseStatusAvailable    EvseStatusType = "Available"
	EvseStatusReserved     EvseStatusType = "Reserved"
	EvseStatusOccupied     EvseStatusType = "Occupied"
	EvseStatusOutOfService EvseStatusType = "OutOfService"
	EvseStatusEvseNotFound EvseStatusType = "EvseNotFound"
	EvseStatusUnknown      EvseStatusType = "Unknown"
)

type DeltaType string

const (
	DeltaTypeInsert DeltaType = "insert"
	DeltaTypeUpdate DeltaType = "update"
	DeltaTypeDelete DeltaType = "delete"
)
