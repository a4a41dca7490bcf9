package nmeadecode

// decodeT27 builds a VesselDynamicData from a long-range position report
// (type 27). Its fields use reduced resolution and a different bit layout
// than types 1-3/18: coordinates are 1/10 minute (divide by 600, not
// 600000) and speed/course carry no decimal scaling at all.
func decodeT27(bv *bitVec, station Station) (ParsedMessage, error) {
	if !bv.sufficientBits(96) {
		return nil, newErr(ErrInvalidSentence, "type 27 payload too short: %d bits", bv.Len())
	}
	msgType := int(bv.pickUint(0, 6))
	if msgType != 27 {
		return nil, newErr(ErrInvalidSentence, "message type %d is not 27", msgType)
	}

	mmsi := uint32(bv.pickUint(8, 30))
	highAccuracy := bv.pickBool(38)
	raim := bv.pickBool(39)
	navStatus := NavigationStatus(bv.pickUint(40, 4))

	var lon *float64
	if raw := bv.pickInt(44, 18); raw != 0x1a838 {
		v := float64(raw) / 600.0
		lon = &v
	}
	var lat *float64
	if raw := bv.pickInt(62, 17); raw != 0xd548 {
		v := float64(raw) / 600.0
		lat = &v
	}

	var sog *float64
	if raw := bv.pickUint(79, 6); raw != 63 {
		v := float64(raw)
		sog = &v
	}

	var cog *float64
	if raw := bv.pickUint(85, 9); raw != 511 {
		v := float64(raw)
		cog = &v
	}

	gnssPosition := bv.pickBool(94)

	return &VesselDynamicData{
		Station:              station,
		MMSI:                 mmsi,
		NavStatus:            navStatus,
		HighPositionAccuracy: highAccuracy,
		Latitude:             lat,
		Longitude:            lon,
		SogKnots:             sog,
		Cog:                  cog,
		RaimFlag:             raim,
		CurrentGnssPosition:  boolPtr(gnssPosition),
	}, nil
}
