package nmeadecode

// decodeT18 builds a VesselDynamicData from a Class B standard (CS) position
// report (type 18).
func decodeT18(bv *bitVec, station Station) (ParsedMessage, error) {
	if !bv.sufficientBits(168) {
		return nil, newErr(ErrInvalidSentence, "type 18 payload too short: %d bits", bv.Len())
	}
	msgType := int(bv.pickUint(0, 6))
	if msgType != 18 {
		return nil, newErr(ErrInvalidSentence, "message type %d is not 18", msgType)
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

	assigned := bv.pickBool(146)
	raim := bv.pickBool(147)
	radio := uint32(bv.pickUint(148, 20))

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
		RadioStatus:           &radio,
	}, nil
}
