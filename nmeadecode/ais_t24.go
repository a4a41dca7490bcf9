package nmeadecode

// decodeT24 builds a VesselStaticData from one part of a static data report
// (type 24); callers needing the full picture combine part A and part B
// themselves (see MergeStaticData). Note: this corrects a name-field width
// bug some decoders carry (20 characters/120 bits, not 120 characters).
func decodeT24(bv *bitVec, station Station) (ParsedMessage, error) {
	if !bv.sufficientBits(40) {
		return nil, newErr(ErrInvalidSentence, "type 24 payload too short: %d bits", bv.Len())
	}
	msgType := int(bv.pickUint(0, 6))
	if msgType != 24 {
		return nil, newErr(ErrInvalidSentence, "message type %d is not 24", msgType)
	}

	mmsi := uint32(bv.pickUint(8, 30))
	partNo := bv.pickUint(38, 2)

	if partNo == 0 {
		if !bv.sufficientBits(160) {
			return nil, newErr(ErrInvalidSentence, "type 24 part A payload too short: %d bits", bv.Len())
		}
		name := bv.pickString(40, 20)
		var namePtr *string
		if name != "" {
			namePtr = &name
		}
		return &VesselStaticData{
			MMSI:   mmsi,
			Name:   namePtr,
			Part24: "A",
		}, nil
	}

	if !bv.sufficientBits(168) {
		return nil, newErr(ErrInvalidSentence, "type 24 part B payload too short: %d bits", bv.Len())
	}

	shipTypeRaw := uint8(bv.pickUint(40, 8))
	shipType := newShipType(shipTypeRaw)
	cargoType := newCargoType(shipTypeRaw)

	vendorID := bv.pickString(48, 3)
	var vendorPtr *string
	if vendorID != "" {
		vendorPtr = &vendorID
	}

	unitModel := uint8(bv.pickUint(66, 4))
	serial := uint32(bv.pickUint(70, 20))

	callSign := bv.pickString(90, 7)
	var callSignPtr *string
	if callSign != "" {
		callSignPtr = &callSign
	}

	vsd := &VesselStaticData{
		MMSI:                  mmsi,
		ShipType:              shipType,
		CargoType:             cargoType,
		EquipmentVendorID:     vendorPtr,
		EquipmentModel:        &unitModel,
		EquipmentSerialNumber: &serial,
		CallSign:              callSignPtr,
		Part24:                "B",
	}

	// MID 98 marks a craft associated with a parent ship; the dimension
	// block is then overloaded to carry the parent ship's MMSI instead.
	if mmsi/1000000 == 98 {
		mothership := uint32(bv.pickUint(132, 30))
		vsd.MothershipMMSI = &mothership
		return vsd, nil
	}

	dimBow := uint16(bv.pickUint(132, 9))
	dimStern := uint16(bv.pickUint(141, 9))
	dimPort := uint16(bv.pickUint(150, 6))
	dimStarboard := uint16(bv.pickUint(156, 6))
	vsd.DimensionToBow = &dimBow
	vsd.DimensionToStern = &dimStern
	vsd.DimensionToPort = &dimPort
	vsd.DimensionToStarboard = &dimStarboard

	return vsd, nil
}
