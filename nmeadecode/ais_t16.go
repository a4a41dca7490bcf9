package nmeadecode

// decodeT16 builds an AssignmentMode from an assignment mode command
// (type 16); a payload shorter than 144 bits commands a single station,
// otherwise two.
func decodeT16(bv *bitVec, station Station) (ParsedMessage, error) {
	if !bv.sufficientBits(96) {
		return nil, newErr(ErrInvalidSentence, "type 16 payload too short: %d bits", bv.Len())
	}
	msgType := int(bv.pickUint(0, 6))
	if msgType != 16 {
		return nil, newErr(ErrInvalidSentence, "message type %d is not 16", msgType)
	}

	sourceMMSI := uint32(bv.pickUint(8, 30))
	am := &AssignmentMode{
		Station:    station,
		SourceMMSI: sourceMMSI,
		DestMMSI1:  uint32(bv.pickUint(40, 30)),
		Offset1:    uint16(bv.pickUint(70, 12)),
		Increment1: uint16(bv.pickUint(82, 10)),
	}

	if bv.sufficientBits(144) {
		dest2 := uint32(bv.pickUint(92, 30))
		offset2 := uint16(bv.pickUint(122, 12))
		increment2 := uint16(bv.pickUint(134, 10))
		am.DestMMSI2 = &dest2
		am.Offset2 = &offset2
		am.Increment2 = &increment2
	}

	return am, nil
}
