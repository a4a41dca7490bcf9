package nmeadecode

// decodeT1T2T3 builds a VesselDynamicData from a Class A position report
// (AIS types 1, 2, 3).
func decodeT1T2T3(bv *bitVec, station Station) (ParsedMessage, error) {
	if !bv.sufficientBits(149) {
		return nil, newErr(ErrInvalidSentence, "type 1/2/3 payload too short: %d bits", bv.Len())
	}

	msgType := int(bv.pickUint(0, 6))
	if msgType < 1 || msgType > 3 {
		return nil, newErr(ErrInvalidSentence, "message type %d is not 1/2/3", msgType)
	}
	mmsi := uint32(bv.pickUint(8, 30))
	navStatus := NavigationStatus(bv.pickUint(38, 4))

	rotRaw := bv.pickInt(42, 8)
	rot, rotDir := rateOfTurn(rotRaw)

	sog := sogKnotsTenths(bv, 50)
	highAccuracy := bv.pickBool(60)
	lon := longitude28(bv, 61)
	lat := latitude27(bv, 89)
	cog := cogTenths(bv, 116)
	heading := headingTrue(bv, 128)

	timestampSecond := uint8(bv.pickUint(137, 6))
	posMeta := positioningSystemMetaFromSecond(uint64(timestampSecond))

	manoeuvre := specialManoeuvre(bv.pickUint(143, 2))
	raim := bv.pickBool(148)
	radio := uint32(bv.pickUint(149, 19))

	return &VesselDynamicData{
		Station:               station,
		AisType:               AisClassA,
		MMSI:                  mmsi,
		NavStatus:             navStatus,
		RateOfTurn:            rot,
		RotDirection:          rotDir,
		SogKnots:              sog,
		HighPositionAccuracy:  highAccuracy,
		Latitude:              lat,
		Longitude:             lon,
		Cog:                   cog,
		HeadingTrue:           heading,
		TimestampSecond:       timestampSecond,
		PositioningSystemMeta: posMeta,
		SpecialManoeuvre:      manoeuvre,
		RaimFlag:              raim,
		RadioStatus:           &radio,
	}, nil
}
