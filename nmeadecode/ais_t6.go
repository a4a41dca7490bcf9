package nmeadecode

// decodeT6T8 builds a BinaryMessage from a binary addressed message (type 6)
// or binary broadcast message (type 8); the two share everything but the
// destination/retransmit fields and the offset where the DAC/FID/data start.
func decodeT6T8(bv *bitVec, station Station) (ParsedMessage, error) {
	msgType := int(bv.pickUint(0, 6))
	mmsi := uint32(bv.pickUint(8, 30))

	switch msgType {
	case 6:
		if !bv.sufficientBits(88) {
			return nil, newErr(ErrInvalidSentence, "type 6 payload too short: %d bits", bv.Len())
		}
		seq := uint8(bv.pickUint(38, 2))
		destMMSI := uint32(bv.pickUint(40, 30))
		retransmit := bv.pickBool(70)
		dac := uint16(bv.pickUint(72, 10))
		fid := uint8(bv.pickUint(82, 6))
		data := sliceBits(bv, 88)
		return &BinaryMessage{
			Station:         station,
			MMSI:            mmsi,
			SequenceNumber:  seq,
			DestinationMMSI: &destMMSI,
			RetransmitFlag:  retransmit,
			DAC:             dac,
			FID:             fid,
			Data:            data,
		}, nil
	case 8:
		if !bv.sufficientBits(56) {
			return nil, newErr(ErrInvalidSentence, "type 8 payload too short: %d bits", bv.Len())
		}
		dac := uint16(bv.pickUint(40, 10))
		fid := uint8(bv.pickUint(50, 6))
		data := sliceBits(bv, 56)
		return &BinaryMessage{
			Station: station,
			MMSI:    mmsi,
			DAC:     dac,
			FID:     fid,
			Data:    data,
		}, nil
	default:
		return nil, newErr(ErrInvalidSentence, "message type %d is not 6/8", msgType)
	}
}

// sliceBits copies the tail of bv starting at offset into a fresh bitVec,
// used to hand callers the opaque application-data portion of a binary
// message without exposing the header bits alongside it.
func sliceBits(bv *bitVec, offset int) *bitVec {
	n := bv.Len() - offset
	if n < 0 {
		n = 0
	}
	out := newBitVec(n)
	for i := 0; i < n; i++ {
		out.setBit(i, bv.pickBool(offset+i))
	}
	return out
}
