package nmeadecode

// decodeT21 builds an AidToNavigation from an aid-to-navigation report
// (type 21). A trailing name extension, present only when the base name
// field wasn't long enough, runs to the end of the payload.
func decodeT21(bv *bitVec, station Station) (ParsedMessage, error) {
	if !bv.sufficientBits(272) {
		return nil, newErr(ErrInvalidSentence, "type 21 payload too short: %d bits", bv.Len())
	}
	msgType := int(bv.pickUint(0, 6))
	if msgType != 21 {
		return nil, newErr(ErrInvalidSentence, "message type %d is not 21", msgType)
	}

	mmsi := uint32(bv.pickUint(8, 30))
	aidType := NavAidType(bv.pickUint(38, 5))
	name := bv.pickString(43, 20)

	highAccuracy := bv.pickBool(163)
	lon := longitude28(bv, 164)
	lat := latitude27(bv, 192)

	dimBow := uint16(bv.pickUint(219, 9))
	dimStern := uint16(bv.pickUint(228, 9))
	dimPort := uint16(bv.pickUint(237, 6))
	dimStarboard := uint16(bv.pickUint(243, 6))

	fixType := newPositionFixType(uint8(bv.pickUint(249, 4)))
	timestampSecond := uint8(bv.pickUint(253, 6))
	offPosition := bv.pickBool(259)
	raim := bv.pickBool(268)
	virtualAid := bv.pickBool(269)
	assigned := bv.pickBool(270)

	var nameExt string
	if bv.Len() > 272 {
		charCount := (bv.Len() - 272) / 6
		nameExt = bv.pickString(272, charCount)
	}

	return &AidToNavigation{
		Station:              station,
		MMSI:                 mmsi,
		AidType:              aidType,
		Name:                 name,
		HighPositionAccuracy: highAccuracy,
		Longitude:            lon,
		Latitude:             lat,
		DimensionToBow:       dimBow,
		DimensionToStern:     dimStern,
		DimensionToPort:      dimPort,
		DimensionToStarboard: dimStarboard,
		PositionFixType:      fixType,
		TimestampSecond:      timestampSecond,
		OffPosition:          offPosition,
		Raim:                 raim,
		VirtualAid:           virtualAid,
		Assigned:             assigned,
		NameExtension:        nameExt,
	}, nil
}
