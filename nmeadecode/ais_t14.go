package nmeadecode

// decodeT14 builds a SafetyBroadcast from a safety-related broadcast
// message (type 14).
func decodeT14(bv *bitVec, station Station) (ParsedMessage, error) {
	if !bv.sufficientBits(40) {
		return nil, newErr(ErrInvalidSentence, "type 14 payload too short: %d bits", bv.Len())
	}
	msgType := int(bv.pickUint(0, 6))
	if msgType != 14 {
		return nil, newErr(ErrInvalidSentence, "message type %d is not 14", msgType)
	}

	mmsi := uint32(bv.pickUint(8, 30))
	charCount := (bv.Len() - 40) / 6
	text := bv.pickString(40, charCount)

	return &SafetyBroadcast{
		Station: station,
		MMSI:    mmsi,
		Text:    text,
	}, nil
}
