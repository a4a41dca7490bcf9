package nmeadecode

// decodeT12 builds an AddressedSafety from an addressed safety-related
// message (type 12). The text field runs to the end of the payload.
func decodeT12(bv *bitVec, station Station) (ParsedMessage, error) {
	if !bv.sufficientBits(72) {
		return nil, newErr(ErrInvalidSentence, "type 12 payload too short: %d bits", bv.Len())
	}
	msgType := int(bv.pickUint(0, 6))
	if msgType != 12 {
		return nil, newErr(ErrInvalidSentence, "message type %d is not 12", msgType)
	}

	sourceMMSI := uint32(bv.pickUint(8, 30))
	seq := uint8(bv.pickUint(38, 2))
	destMMSI := uint32(bv.pickUint(40, 30))
	retransmit := bv.pickBool(70)

	charCount := (bv.Len() - 72) / 6
	text := bv.pickString(72, charCount)

	return &AddressedSafety{
		Station:         station,
		SourceMMSI:      sourceMMSI,
		SequenceNumber:  seq,
		DestinationMMSI: destMMSI,
		RetransmitFlag:  retransmit,
		Text:            text,
	}, nil
}
