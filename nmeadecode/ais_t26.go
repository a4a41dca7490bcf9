package nmeadecode

// decodeT26 builds a MultipleSlotBinary from a multiple-slot binary message
// (type 26); identical to type 25 except for a trailing 20-bit
// communication-state/radio field.
func decodeT26(bv *bitVec, station Station) (ParsedMessage, error) {
	if !bv.sufficientBits(40) {
		return nil, newErr(ErrInvalidSentence, "type 26 payload too short: %d bits", bv.Len())
	}
	msgType := int(bv.pickUint(0, 6))
	if msgType != 26 {
		return nil, newErr(ErrInvalidSentence, "message type %d is not 26", msgType)
	}

	mmsi := uint32(bv.pickUint(8, 30))
	addressed := bv.pickBool(38)
	structured := bv.pickBool(39)

	offset := 40
	msg := &MultipleSlotBinary{Station: station, MMSI: mmsi}

	if addressed {
		if !bv.sufficientBits(offset + 30) {
			return nil, newErr(ErrInvalidSentence, "type 26 payload too short for dest MMSI")
		}
		dest := uint32(bv.pickUint(offset, 30))
		msg.DestMMSI = &dest
		offset += 30
	}

	if structured {
		if !bv.sufficientBits(offset + 16) {
			return nil, newErr(ErrInvalidSentence, "type 26 payload too short for app id")
		}
		appID := uint16(bv.pickUint(offset, 16))
		msg.AppID = &appID
		offset += 16
	}

	radioOffset := bv.Len() - 20
	if radioOffset < offset {
		radioOffset = offset
	}

	msg.Data = slicePartialBits(bv, offset, radioOffset)
	msg.Radio = uint32(bv.pickUint(radioOffset, 20))
	return msg, nil
}

// slicePartialBits copies bits in [start, end) into a fresh bitVec.
func slicePartialBits(bv *bitVec, start, end int) *bitVec {
	n := end - start
	if n < 0 {
		n = 0
	}
	out := newBitVec(n)
	for i := 0; i < n; i++ {
		out.setBit(i, bv.pickBool(start+i))
	}
	return out
}
