package nmeadecode

import "time"

// MessageKind discriminates the tagged ParsedMessage union returned by
// Parse. Every concrete result type carries a matching Kind() method.
type MessageKind int

const (
	KindIncomplete MessageKind = iota
	KindUnsupported
	KindGGA
	KindRMC
	KindGSA
	KindGSV
	KindVTG
	KindGLL
	KindGNS
	KindHDT
	KindVHW
	KindMWV
	KindMTW
	KindDBS
	KindDPT
	KindALM
	KindDTM
	KindMSS
	KindSTN
	KindVBW
	KindZDA
	KindVesselDynamicData
	KindVesselStaticData // covers both type 24 parts A and B, discriminated by VesselStaticData.Part24
	KindBaseStationReport
	KindBinaryMessage
	KindAddressedSafety
	KindSafetyBroadcast
	KindInterrogation
	KindAssignmentMode
	KindDGNSSBroadcast
	KindChannelManagement
	KindGroupAssignment
	KindAidToNavigation
	KindAcknowledge
	KindStandardSARAircraft
	KindUTCInquiry
	KindDataLinkManagement
	KindSingleSlotBinary
	KindMultipleSlotBinary
)

// ParsedMessage is the tagged union returned by Parse: every variant
// implements Kind() so call sites switch on it instead of on a type
// hierarchy.
type ParsedMessage interface {
	Kind() MessageKind
}

var messageKindNames = map[MessageKind]string{
	KindIncomplete:          "incomplete",
	KindUnsupported:         "unsupported",
	KindGGA:                 "gga",
	KindRMC:                 "rmc",
	KindGSA:                 "gsa",
	KindGSV:                 "gsv",
	KindVTG:                 "vtg",
	KindGLL:                 "gll",
	KindGNS:                 "gns",
	KindHDT:                 "hdt",
	KindVHW:                 "vhw",
	KindMWV:                 "mwv",
	KindMTW:                 "mtw",
	KindDBS:                 "dbs",
	KindDPT:                 "dpt",
	KindALM:                 "alm",
	KindDTM:                 "dtm",
	KindMSS:                 "mss",
	KindSTN:                 "stn",
	KindVBW:                 "vbw",
	KindZDA:                 "zda",
	KindVesselDynamicData:   "ais_vessel_dynamic",
	KindVesselStaticData:    "ais_vessel_static",
	KindBaseStationReport:   "ais_base_station",
	KindBinaryMessage:       "ais_binary_message",
	KindAddressedSafety:     "ais_addressed_safety",
	KindSafetyBroadcast:     "ais_safety_broadcast",
	KindInterrogation:       "ais_interrogation",
	KindAssignmentMode:      "ais_assignment_mode",
	KindDGNSSBroadcast:      "ais_dgnss_broadcast",
	KindChannelManagement:   "ais_channel_management",
	KindGroupAssignment:     "ais_group_assignment",
	KindAidToNavigation:     "ais_aid_to_navigation",
	KindAcknowledge:         "ais_acknowledge",
	KindStandardSARAircraft: "ais_standard_sar_aircraft",
	KindUTCInquiry:          "ais_utc_inquiry",
	KindDataLinkManagement:  "ais_data_link_management",
	KindSingleSlotBinary:    "ais_single_slot_binary",
	KindMultipleSlotBinary:  "ais_multiple_slot_binary",
}

// String names the sentence family or AIS message group, for use as a
// low-cardinality metric label.
func (k MessageKind) String() string {
	if name, ok := messageKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Incomplete is returned when a fragment was absorbed but its group has not
// completed yet. It is not an error.
type Incomplete struct{}

func (Incomplete) Kind() MessageKind { return KindIncomplete }

// Unsupported is returned for a syntactically valid envelope whose sentence
// or message type has no schema.
type Unsupported struct {
	SentenceOrType string
}

func (Unsupported) Kind() MessageKind { return KindUnsupported }

// Station is the AIS station role a message was received on.
type Station int

const (
	StationBaseStation Station = iota
	StationMobileStation
	StationAircraftStation
	StationAtoN
	StationUnknownStation
)

func (s Station) String() string {
	switch s {
	case StationBaseStation:
		return "base station"
	case StationMobileStation:
		return "mobile station"
	case StationAircraftStation:
		return "aircraft station"
	case StationAtoN:
		return "aid to navigation"
	default:
		return "unknown station"
	}
}

// stationFromTalker resolves the AIS station kind from the VDM/VDO talker
// prefix the way the reference decoder's station table does.
func stationFromTalker(talker string) Station {
	switch talker {
	case "AB":
		return StationBaseStation
	case "AD":
		return StationAtoN
	case "AI":
		return StationMobileStation
	case "AN":
		return StationAtoN
	case "AR":
		return StationAircraftStation
	case "AS":
		return StationMobileStation
	case "AT":
		return StationAircraftStation
	case "AX":
		return StationMobileStation
	default:
		return StationUnknownStation
	}
}

// AisClass distinguishes a transponder's class A/B equipment tier.
type AisClass int

const (
	AisClassUnknown AisClass = iota
	AisClassA
	AisClassB
)

// NavigationStatus is the 4-bit navigational status code of VesselDynamicData.
type NavigationStatus uint8

const (
	NavUnderWayUsingEngine NavigationStatus = iota
	NavAtAnchor
	NavNotUnderCommand
	NavRestrictedManoeuvrability
	NavConstrainedByDraught
	NavMoored
	NavAground
	NavEngagedInFishing
	NavUnderWaySailing
	NavReserved9
	NavReserved10
	NavReserved11
	NavReserved12
	NavReserved13
	NavAisSartIsActive
	NavNotDefined
)

func (n NavigationStatus) String() string {
	switch n {
	case NavUnderWayUsingEngine:
		return "under way using engine"
	case NavAtAnchor:
		return "at anchor"
	case NavNotUnderCommand:
		return "not under command"
	case NavRestrictedManoeuvrability:
		return "restricted manoeuvrability"
	case NavConstrainedByDraught:
		return "constrained by her draught"
	case NavMoored:
		return "moored"
	case NavAground:
		return "aground"
	case NavEngagedInFishing:
		return "engaged in fishing"
	case NavUnderWaySailing:
		return "under way sailing"
	case NavAisSartIsActive:
		return "AIS-SART is active"
	default:
		return "not defined"
	}
}

// RotDirection tags the rate-of-turn direction, including the cases where
// the turn indicator carries no usable information.
type RotDirection int

const (
	RotNoInfo RotDirection = iota
	RotNotTurning
	RotPort
	RotStarboard
)

// PositioningSystemMeta describes the EPFS mode behind a UTC-second value.
type PositioningSystemMeta int

const (
	PositioningOperative PositioningSystemMeta = iota
	PositioningManualInputMode
	PositioningDeadReckoningMode
	PositioningInoperative
)

// PositionFixType is the EPFS device type code.
type PositionFixType uint8

const (
	FixUndefined PositionFixType = iota
	FixGPS
	FixGLONASS
	FixCombinedGPSGLONASS
	FixLoranC
	FixChayka
	FixIntegrated
	FixSurveyed
	FixGalileo
)

func (f PositionFixType) String() string {
	switch f {
	case FixGPS:
		return "GPS"
	case FixGLONASS:
		return "GLONASS"
	case FixCombinedGPSGLONASS:
		return "combined GPS/GLONASS"
	case FixLoranC:
		return "Loran-C"
	case FixChayka:
		return "Chayka"
	case FixIntegrated:
		return "integrated navigation system"
	case FixSurveyed:
		return "surveyed"
	case FixGalileo:
		return "Galileo"
	default:
		return "undefined"
	}
}

// Eta is the month/day/hour/minute ETA carried by VesselStaticData; the raw
// field values are kept as sent, including the ITU-R M.1371 "not available"
// sentinels (month 0, day 0, hour 24, minute 60).
type Eta struct {
	Month, Day, Hour, Minute int
}

// VesselDynamicData covers AIS types 1, 2, 3, 18, 19, 27. Type 19 packs a
// handful of static fields (name, ship type, dimensions) alongside its
// position report; those are nil for every other type.
type VesselDynamicData struct {
	OwnVessel             bool
	Station               Station
	AisType               AisClass
	MMSI                  uint32
	NavStatus             NavigationStatus
	RateOfTurn            *float64
	RotDirection          RotDirection
	SogKnots              *float64
	HighPositionAccuracy  bool
	Latitude              *float64
	Longitude             *float64
	Cog                   *float64
	HeadingTrue           *float64
	TimestampSecond       uint8
	PositioningSystemMeta *PositioningSystemMeta
	CurrentGnssPosition   *bool
	SpecialManoeuvre      *bool
	Assigned              *bool
	RaimFlag              bool
	RadioStatus           *uint32

	Name                 *string
	ShipType             *ShipType
	DimensionToBow       *uint16
	DimensionToStern     *uint16
	DimensionToPort      *uint16
	DimensionToStarboard *uint16
	PositionFixType      *PositionFixType
}

func (VesselDynamicData) Kind() MessageKind { return KindVesselDynamicData }

// VesselStaticData covers AIS types 5 and 24A/24B.
type VesselStaticData struct {
	OwnVessel              bool
	AisType                AisClass
	MMSI                   uint32
	AisVersionIndicator    uint8
	ImoNumber              *uint32
	CallSign               *string
	Name                   *string
	ShipType               ShipType
	CargoType              CargoType
	EquipmentVendorID      *string
	EquipmentModel         *uint8
	EquipmentSerialNumber  *uint32
	DimensionToBow         *uint16
	DimensionToStern       *uint16
	DimensionToPort        *uint16
	DimensionToStarboard   *uint16
	PositionFixType        *PositionFixType
	Eta                    *Eta
	Draught10              *uint8
	Destination            *string
	MothershipMMSI         *uint32
	// Part24 discriminates which half of a type-24 message this value was
	// built from; "" for type 5, "A" or "B" for type 24.
	Part24 string
}

func (VesselStaticData) Kind() MessageKind { return KindVesselStaticData }

// BaseStationReport covers AIS types 4, 11.
type BaseStationReport struct {
	OwnVessel            bool
	Station              Station
	MMSI                 uint32
	Timestamp            *time.Time
	HighPositionAccuracy bool
	Latitude             *float64
	Longitude            *float64
	PositionFixType      PositionFixType
	RaimFlag             bool
	RadioStatus          uint32
}

func (BaseStationReport) Kind() MessageKind { return KindBaseStationReport }

// BinaryMessage covers AIS types 6, 8, with the application payload
// exposed as an opaque bit vector.
type BinaryMessage struct {
	OwnVessel       bool
	Station         Station
	MMSI            uint32
	SequenceNumber  uint8
	DestinationMMSI *uint32
	RetransmitFlag  bool
	DAC             uint16
	FID             uint8
	Data            *bitVec
}

func (BinaryMessage) Kind() MessageKind { return KindBinaryMessage }

// Acknowledge covers AIS types 7, 13.
type Acknowledge struct {
	OwnVessel  bool
	Station    Station
	SourceMMSI uint32
	MMSI1      uint32
	MMSI1Seq   uint8
	MMSI2      uint32
	MMSI2Seq   uint8
	MMSI3      uint32
	MMSI3Seq   uint8
	MMSI4      uint32
	MMSI4Seq   uint8
}

func (Acknowledge) Kind() MessageKind { return KindAcknowledge }

// AddressedSafety covers AIS type 12.
type AddressedSafety struct {
	OwnVessel       bool
	Station         Station
	SourceMMSI      uint32
	SequenceNumber  uint8
	DestinationMMSI uint32
	RetransmitFlag  bool
	Text            string
}

func (AddressedSafety) Kind() MessageKind { return KindAddressedSafety }

// SafetyBroadcast covers AIS type 14.
type SafetyBroadcast struct {
	OwnVessel bool
	Station   Station
	MMSI      uint32
	Text      string
}

func (SafetyBroadcast) Kind() MessageKind { return KindSafetyBroadcast }

// DGNSSBroadcast covers AIS type 17.
type DGNSSBroadcast struct {
	OwnVessel bool
	Station   Station
	MMSI      uint32
	Latitude  *float64
	Longitude *float64
	Payload   *bitVec
}

func (DGNSSBroadcast) Kind() MessageKind { return KindDGNSSBroadcast }

// StandardSARAircraft covers AIS type 9.
type StandardSARAircraft struct {
	OwnVessel            bool
	Station              Station
	MMSI                 uint32
	Altitude             *uint16
	SogKnots             *uint16
	HighPositionAccuracy bool
	Latitude             *float64
	Longitude            *float64
	Cog                  *float64
	TimestampSecond      uint8
	Dte                  bool
	Assigned             bool
	RaimFlag             bool
	RadioStatus          uint32
}

func (StandardSARAircraft) Kind() MessageKind { return KindStandardSARAircraft }

// UTCInquiry covers AIS type 10.
type UTCInquiry struct {
	OwnVessel       bool
	Station         Station
	SourceMMSI      uint32
	DestinationMMSI uint32
}

func (UTCInquiry) Kind() MessageKind { return KindUTCInquiry }

// SingleSlotBinary covers AIS type 25.
type SingleSlotBinary struct {
	OwnVessel bool
	Station   Station
	MMSI      uint32
	DestMMSI  *uint32
	AppID     *uint16
	Data      *bitVec
}

func (SingleSlotBinary) Kind() MessageKind { return KindSingleSlotBinary }

// MultipleSlotBinary covers AIS type 26.
type MultipleSlotBinary struct {
	OwnVessel bool
	Station   Station
	MMSI      uint32
	DestMMSI  *uint32
	AppID     *uint16
	Data      *bitVec
	Radio     uint32
}

func (MultipleSlotBinary) Kind() MessageKind { return KindMultipleSlotBinary }

// InterrogationCase distinguishes the four wire shapes a type-15
// interrogation can take depending on how many stations/requests it packs.
type InterrogationCase int

const (
	InterrogationCase1 InterrogationCase = iota
	InterrogationCase2
	InterrogationCase3
	InterrogationCase4
)

// InterrogationRequest is one (message type, slot offset) request within an
// Interrogation.
type InterrogationRequest struct {
	MessageType uint8
	SlotOffset  uint16
}

// InterrogationStation is one interrogated MMSI plus the requests aimed at
// it.
type InterrogationStation struct {
	MMSI     uint32
	Requests []InterrogationRequest
}

// Interrogation covers AIS type 15.
type Interrogation struct {
	Station    Station
	SourceMMSI uint32
	Case       InterrogationCase
	Stations   []InterrogationStation
}

func (Interrogation) Kind() MessageKind { return KindInterrogation }

// AssignmentMode covers AIS type 16.
type AssignmentMode struct {
	Station        Station
	SourceMMSI     uint32
	DestMMSI1      uint32
	Offset1        uint16
	Increment1     uint16
	DestMMSI2      *uint32
	Offset2        *uint16
	Increment2     *uint16
}

func (AssignmentMode) Kind() MessageKind { return KindAssignmentMode }

// NavAidType is the 5-bit aid-to-navigation type code of AidToNavigation.
type NavAidType uint8

const (
	NavAidNotSpecified NavAidType = iota
	NavAidReferencePoint
	NavAidRacon
	NavAidFixedStructure
	NavAidSpareLocal4
	NavAidLightWithoutSectors
	NavAidLightWithSectors
	NavAidLeadingLightFront
	NavAidLeadingLightRear
	NavAidBeaconCardinalN
	NavAidBeaconCardinalE
	NavAidBeaconCardinalS
	NavAidBeaconCardinalW
	NavAidBeaconPortHand
	NavAidBeaconStarboardHand
	NavAidBeaconPreferredChannelPortHand
	NavAidBeaconPreferredChannelStarboardHand
	NavAidBeaconIsolatedDanger
	NavAidBeaconSafeWater
	NavAidBeaconSpecialMark
	NavAidCardinalMarkN
	NavAidCardinalMarkE
	NavAidCardinalMarkS
	NavAidCardinalMarkW
	NavAidPortHandMark
	NavAidStarboardHandMark
	NavAidPreferredChannelPortHandMark
	NavAidPreferredChannelStarboardHandMark
	NavAidIsolatedDanger
	NavAidSafeWater
	NavAidSpecialMark
	NavAidLightVesselOrLanby
)

func (n NavAidType) String() string {
	switch n {
	case NavAidReferencePoint:
		return "reference point"
	case NavAidRacon:
		return "RACON"
	case NavAidFixedStructure:
		return "fixed structure"
	case NavAidLightWithoutSectors:
		return "light, without sectors"
	case NavAidLightWithSectors:
		return "light, with sectors"
	case NavAidLeadingLightFront:
		return "leading light front"
	case NavAidLeadingLightRear:
		return "leading light rear"
	case NavAidBeaconCardinalN:
		return "beacon, cardinal N"
	case NavAidBeaconCardinalE:
		return "beacon, cardinal E"
	case NavAidBeaconCardinalS:
		return "beacon, cardinal S"
	case NavAidBeaconCardinalW:
		return "beacon, cardinal W"
	case NavAidBeaconPortHand:
		return "beacon, port hand"
	case NavAidBeaconStarboardHand:
		return "beacon, starboard hand"
	case NavAidBeaconPreferredChannelPortHand:
		return "beacon, preferred channel port hand"
	case NavAidBeaconPreferredChannelStarboardHand:
		return "beacon, preferred channel starboard hand"
	case NavAidBeaconIsolatedDanger:
		return "beacon, isolated danger"
	case NavAidBeaconSafeWater:
		return "beacon, safe water"
	case NavAidBeaconSpecialMark:
		return "beacon, special mark"
	case NavAidCardinalMarkN:
		return "cardinal mark N"
	case NavAidCardinalMarkE:
		return "cardinal mark E"
	case NavAidCardinalMarkS:
		return "cardinal mark S"
	case NavAidCardinalMarkW:
		return "cardinal mark W"
	case NavAidPortHandMark:
		return "port hand mark"
	case NavAidStarboardHandMark:
		return "starboard hand mark"
	case NavAidPreferredChannelPortHandMark:
		return "preferred channel port hand mark"
	case NavAidPreferredChannelStarboardHandMark:
		return "preferred channel starboard hand mark"
	case NavAidIsolatedDanger:
		return "isolated danger"
	case NavAidSafeWater:
		return "safe water"
	case NavAidSpecialMark:
		return "special mark"
	case NavAidLightVesselOrLanby:
		return "light vessel/LANBY"
	default:
		return "not specified"
	}
}

// AidToNavigation covers AIS type 21.
type AidToNavigation struct {
	Station              Station
	MMSI                 uint32
	AidType              NavAidType
	Name                 string
	HighPositionAccuracy bool
	Longitude            *float64
	Latitude             *float64
	DimensionToBow       uint16
	DimensionToStern     uint16
	DimensionToPort      uint16
	DimensionToStarboard uint16
	PositionFixType      PositionFixType
	TimestampSecond      uint8
	OffPosition          bool
	Raim                 bool
	VirtualAid           bool
	Assigned             bool
	NameExtension        string
}

func (AidToNavigation) Kind() MessageKind { return KindAidToNavigation }

// ChannelManagement covers AIS type 22.
type ChannelManagement struct {
	Station        Station
	SourceMMSI     uint32
	ChannelA       uint16
	ChannelB       uint16
	TxRxMode       uint8
	Power          bool
	Addressed      bool
	NELongitude    *float64
	NELatitude     *float64
	SWLongitude    *float64
	SWLatitude     *float64
	DestMMSI1      uint32
	DestMMSI2      uint32
	ChannelABand   bool
	ChannelBBand   bool
	Zonesize       uint8
}

func (ChannelManagement) Kind() MessageKind { return KindChannelManagement }

// StationType is the 4-bit intended-recipient type of a GroupAssignment.
type StationType uint8

const (
	StationTypeAll StationType = iota
	StationTypeClassAOnly
	StationTypeReserved2
	StationTypeClassBSelfOrganizing
	StationTypeClassBCarrierSense
	StationTypeSAR
	StationTypeAtoN
	StationTypeClassBMobile
	StationTypeReserved8
	StationTypeReserved9
	StationTypeReserved10
	StationTypeReserved11
	StationTypeReserved12
	StationTypeReserved13
	StationTypeReserved14
	StationTypeReserved15
)

func (s StationType) String() string {
	switch s {
	case StationTypeAll:
		return "all types"
	case StationTypeClassAOnly:
		return "Class A"
	case StationTypeClassBSelfOrganizing:
		return "Class B, SOTDMA"
	case StationTypeClassBCarrierSense:
		return "Class B, CS"
	case StationTypeSAR:
		return "SAR airborne"
	case StationTypeAtoN:
		return "aid to navigation"
	case StationTypeClassBMobile:
		return "Class B, shipborne mobile"
	default:
		return "reserved"
	}
}

// StationInterval is the reporting interval a GroupAssignment commands.
type StationInterval uint8

const (
	StationIntervalAsAutonomous StationInterval = iota
	StationInterval10Min
	StationInterval6Min
	StationInterval3Min
	StationInterval1Min
	StationInterval30Sec
	StationInterval15Sec
	StationInterval10Sec
	StationInterval5Sec
	StationIntervalNextShorter
	StationIntervalNextLonger
	StationIntervalReserved11
	StationIntervalReserved12
	StationIntervalReserved13
	StationInterval2Sec
	StationIntervalReserved15
)

// GroupAssignment covers AIS type 23.
type GroupAssignment struct {
	Station     Station
	SourceMMSI  uint32
	NELongitude *float64
	NELatitude  *float64
	SWLongitude *float64
	SWLatitude  *float64
	StationType StationType
	ShipType    ShipType
	Interval    StationInterval
	Quiet       uint8
}

func (GroupAssignment) Kind() MessageKind { return KindGroupAssignment }

// DataLinkManagement covers AIS type 20; it carries up to four reservation
// blocks of (offset, slots, timeout, increment).
type DataLinkManagementBlock struct {
	Offset   uint16
	Slots    uint8
	Timeout  uint8
	Increment uint16
}

type DataLinkManagement struct {
	Station    Station
	SourceMMSI uint32
	Blocks     []DataLinkManagementBlock
}

func (DataLinkManagement) Kind() MessageKind { return KindDataLinkManagement }
