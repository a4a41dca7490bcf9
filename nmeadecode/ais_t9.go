package nmeadecode

// decodeT9 builds a StandardSARAircraft from a standard SAR aircraft
// position report (type 9).
func decodeT9(bv *bitVec, station Station) (ParsedMessage, error) {
	if !bv.sufficientBits(168) {
		return nil, newErr(ErrInvalidSentence, "type 9 payload too short: %d bits", bv.Len())
	}
	msgType := int(bv.pickUint(0, 6))
	if msgType != 9 {
		return nil, newErr(ErrInvalidSentence, "message type %d is not 9", msgType)
	}

	mmsi := uint32(bv.pickUint(8, 30))

	var altitude *uint16
	if a := uint16(bv.pickUint(38, 12)); a != 4095 {
		altitude = &a
	}

	var sog *uint16
	if s := uint16(bv.pickUint(50, 10)); s != 1023 {
		sog = &s
	}

	highAccuracy := bv.pickBool(60)
	lon := longitude28(bv, 61)
	lat := latitude27(bv, 89)
	cog := cogTenths(bv, 116)
	timestampSecond := uint8(bv.pickUint(128, 6))
	dte := bv.pickBool(142)
	assigned := bv.pickBool(146)
	raim := bv.pickBool(147)
	radio := uint32(bv.pickUint(148, 20))

	return &StandardSARAircraft{
		Station:              station,
		MMSI:                 mmsi,
		Altitude:             altitude,
		SogKnots:             sog,
		HighPositionAccuracy: highAccuracy,
		Latitude:             lat,
		Longitude:            lon,
		Cog:                  cog,
		TimestampSecond:      timestampSecond,
		Dte:                  dte,
		Assigned:             assigned,
		RaimFlag:             raim,
		RadioStatus:          radio,
	}, nil
}
