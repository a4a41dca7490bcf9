package nmeadecode

// ShipType is the decade bucket of the combined ship-and-cargo-type code
// carried by VesselStaticData (types 5, 24B), VesselDynamicData (type 19)
// and GroupAssignment (type 23).
type ShipType uint8

const (
	ShipNotAvailable ShipType = iota
	ShipReserved1
	ShipWingInGround
	ShipFishing
	ShipTowing
	ShipTowingLong
	ShipDredgingOrUnderwaterOps
	ShipDivingOps
	ShipMilitaryOps
	ShipSailing
	ShipPleasureCraft
	ShipReserved38
	ShipReserved39
	ShipHighSpeedCraft
	ShipPilot
	ShipSearchAndRescue
	ShipTug
	ShipPortTender
	ShipAntiPollutionEquipment
	ShipLawEnforcement
	ShipSpareLocal56
	ShipSpareLocal57
	ShipMedicalTransport
	ShipNoncombatant
	ShipPassenger
	ShipCargo
	ShipTanker
	ShipOther
)

// newShipType maps the raw 0..99 ship-and-cargo-type field to its decade
// bucket, per ITU-R M.1371.
func newShipType(raw uint8) ShipType {
	switch {
	case raw <= 9:
		return ShipNotAvailable
	case raw <= 19:
		return ShipReserved1
	case raw <= 29:
		return ShipWingInGround
	case raw == 30:
		return ShipFishing
	case raw == 31:
		return ShipTowing
	case raw == 32:
		return ShipTowingLong
	case raw == 33:
		return ShipDredgingOrUnderwaterOps
	case raw == 34:
		return ShipDivingOps
	case raw == 35:
		return ShipMilitaryOps
	case raw == 36:
		return ShipSailing
	case raw == 37:
		return ShipPleasureCraft
	case raw == 38:
		return ShipReserved38
	case raw == 39:
		return ShipReserved39
	case raw <= 49:
		return ShipHighSpeedCraft
	case raw == 50:
		return ShipPilot
	case raw == 51:
		return ShipSearchAndRescue
	case raw == 52:
		return ShipTug
	case raw == 53:
		return ShipPortTender
	case raw == 54:
		return ShipAntiPollutionEquipment
	case raw == 55:
		return ShipLawEnforcement
	case raw == 56:
		return ShipSpareLocal56
	case raw == 57:
		return ShipSpareLocal57
	case raw == 58:
		return ShipMedicalTransport
	case raw == 59:
		return ShipNoncombatant
	case raw <= 69:
		return ShipPassenger
	case raw <= 79:
		return ShipCargo
	case raw <= 89:
		return ShipTanker
	default:
		return ShipOther
	}
}

func (s ShipType) String() string {
	switch s {
	case ShipWingInGround:
		return "wing in ground"
	case ShipFishing:
		return "fishing"
	case ShipTowing:
		return "towing"
	case ShipTowingLong:
		return "towing, long"
	case ShipDredgingOrUnderwaterOps:
		return "dredging or underwater ops"
	case ShipDivingOps:
		return "diving ops"
	case ShipMilitaryOps:
		return "military ops"
	case ShipSailing:
		return "sailing"
	case ShipPleasureCraft:
		return "pleasure craft"
	case ShipHighSpeedCraft:
		return "high-speed craft"
	case ShipPilot:
		return "pilot"
	case ShipSearchAndRescue:
		return "search and rescue"
	case ShipTug:
		return "tug"
	case ShipPortTender:
		return "port tender"
	case ShipAntiPollutionEquipment:
		return "anti-pollution equipment"
	case ShipLawEnforcement:
		return "law enforcement"
	case ShipMedicalTransport:
		return "medical transport"
	case ShipNoncombatant:
		return "noncombatant"
	case ShipPassenger:
		return "passenger"
	case ShipCargo:
		return "cargo"
	case ShipTanker:
		return "tanker"
	case ShipOther:
		return "other"
	default:
		return "(not available)"
	}
}

// CargoType is the hazard-category bucket of the combined ship-and-cargo
// field's low digit.
type CargoType uint8

const (
	CargoUndefined CargoType = iota
	CargoHazardousCategoryA
	CargoHazardousCategoryB
	CargoHazardousCategoryC
	CargoHazardousCategoryD
	CargoReserved5
	CargoReserved6
	CargoReserved7
	CargoReserved8
	CargoReserved9
)

func newCargoType(raw uint8) CargoType {
	switch raw % 10 {
	case 1:
		return CargoHazardousCategoryA
	case 2:
		return CargoHazardousCategoryB
	case 3:
		return CargoHazardousCategoryC
	case 4:
		return CargoHazardousCategoryD
	case 5:
		return CargoReserved5
	case 6:
		return CargoReserved6
	case 7:
		return CargoReserved7
	case 8:
		return CargoReserved8
	case 9:
		return CargoReserved9
	default:
		return CargoUndefined
	}
}

func (c CargoType) String() string {
	switch c {
	case CargoHazardousCategoryA:
		return "hazardous category A"
	case CargoHazardousCategoryB:
		return "hazardous category B"
	case CargoHazardousCategoryC:
		return "hazardous category C"
	case CargoHazardousCategoryD:
		return "hazardous category D"
	case CargoUndefined:
		return "undefined"
	default:
		return "(reserved)"
	}
}

// newPositionFixType maps the raw 0..15 EPFS type code; 0 maps to
// FixUndefined, as do the reserved codes above FixGalileo.
func newPositionFixType(raw uint8) PositionFixType {
	if raw > uint8(FixGalileo) {
		return FixUndefined
	}
	return PositionFixType(raw)
}
