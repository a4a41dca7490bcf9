package nmeadecode

// decodeT10 builds a UTCInquiry from a UTC/date inquiry (type 10).
func decodeT10(bv *bitVec, station Station) (ParsedMessage, error) {
	if !bv.sufficientBits(72) {
		return nil, newErr(ErrInvalidSentence, "type 10 payload too short: %d bits", bv.Len())
	}
	msgType := int(bv.pickUint(0, 6))
	if msgType != 10 {
		return nil, newErr(ErrInvalidSentence, "message type %d is not 10", msgType)
	}

	return &UTCInquiry{
		Station:         station,
		SourceMMSI:      uint32(bv.pickUint(8, 30)),
		DestinationMMSI: uint32(bv.pickUint(40, 30)),
	}, nil
}
