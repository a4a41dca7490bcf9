package nmeadecode

// decodeT7T13 builds an Acknowledge from a binary acknowledge (type 7) or
// safety-related acknowledge (type 13); both ack up to four MMSIs and the
// payload's actual length tells how many are present.
func decodeT7T13(bv *bitVec, station Station) (ParsedMessage, error) {
	msgType := int(bv.pickUint(0, 6))
	if msgType != 7 && msgType != 13 {
		return nil, newErr(ErrInvalidSentence, "message type %d is not 7/13", msgType)
	}
	if !bv.sufficientBits(72) {
		return nil, newErr(ErrInvalidSentence, "type 7/13 payload too short: %d bits", bv.Len())
	}

	sourceMMSI := uint32(bv.pickUint(8, 30))
	ack := &Acknowledge{
		Station:    station,
		SourceMMSI: sourceMMSI,
		MMSI1:      uint32(bv.pickUint(40, 30)),
		MMSI1Seq:   uint8(bv.pickUint(70, 2)),
	}

	if bv.sufficientBits(104) {
		ack.MMSI2 = uint32(bv.pickUint(72, 30))
		ack.MMSI2Seq = uint8(bv.pickUint(102, 2))
	}
	if bv.sufficientBits(136) {
		ack.MMSI3 = uint32(bv.pickUint(104, 30))
		ack.MMSI3Seq = uint8(bv.pickUint(134, 2))
	}
	if bv.sufficientBits(168) {
		ack.MMSI4 = uint32(bv.pickUint(136, 30))
		ack.MMSI4Seq = uint8(bv.pickUint(166, 2))
	}

	return ack, nil
}
