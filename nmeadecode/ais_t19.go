package nmeadecode

// decodeT19 builds a VesselDynamicData from a Class B extended (SO) position
// report (type 19), which packs the usual dynamic fields together with a
// vessel name, ship type and dimensions.
func decodeT19(bv *bitVec, station Station) (ParsedMessage, error) {
	if !bv.sufficientBits(312) {
		return nil, newErr(ErrInvalidSentence, "type 19 payload too short: %d bits", bv.Len())
	}
	msgType := int(bv.pickUint(0, 6))
	if msgType != 19 {
		return nil, newErr(ErrInvalidSentence, "message type %d is not 19", msgType)
	}

	mmsi := uint32(bv.pickUint(8, 30))
	sog := sogKnotsTenths(bv, 46)
	highAccuracy := bv.pickBool(56)
	lon := longitude28(bv, 57)
	lat := latitude27(bv, 85)
	cog := cogTenths(bv, 112)
	heading := headingTrue(bv, 124)
	timestampSecond := uint8(bv.pickUint(133, 6))
	posMeta := positioningSystemMetaFromSecond(uint64(timestampSecond))

	name := bv.pickString(143, 20)
	var namePtr *string
	if name != "" {
		namePtr = &name
	}

	shipType := newShipType(uint8(bv.pickUint(263, 8)))

	dimBow := uint16(bv.pickUint(271, 9))
	dimStern := uint16(bv.pickUint(280, 9))
	dimPort := uint16(bv.pickUint(289, 6))
	dimStarboard := uint16(bv.pickUint(295, 6))

	fixRaw := uint8(bv.pickUint(301, 4))
	var fixPtr *PositionFixType
	if fixRaw != 0 {
		fix := newPositionFixType(fixRaw)
		fixPtr = &fix
	}

	raim := bv.pickBool(305)
	assigned := bv.pickBool(307)

	return &VesselDynamicData{
		Station:               station,
		AisType:               AisClassB,
		MMSI:                  mmsi,
		SogKnots:              sog,
		HighPositionAccuracy:  highAccuracy,
		Latitude:              lat,
		Longitude:             lon,
		Cog:                   cog,
		HeadingTrue:           heading,
		TimestampSecond:       timestampSecond,
		PositioningSystemMeta: posMeta,
		Assigned:              boolPtr(assigned),
		RaimFlag:              raim,
		Name:                  namePtr,
		ShipType:              &shipType,
		DimensionToBow:        &dimBow,
		DimensionToStern:      &dimStern,
		DimensionToPort:       &dimPort,
		DimensionToStarboard:  &dimStarboard,
		PositionFixType:       fixPtr,
	}, nil
}
