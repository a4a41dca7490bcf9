package nmeadecode

// decodeT25 builds a SingleSlotBinary from a single-slot binary message
// (type 25); the addressed and structured flags pick where the destination
// MMSI and application ID live.
func decodeT25(bv *bitVec, station Station) (ParsedMessage, error) {
	if !bv.sufficientBits(40) {
		return nil, newErr(ErrInvalidSentence, "type 25 payload too short: %d bits", bv.Len())
	}
	msgType := int(bv.pickUint(0, 6))
	if msgType != 25 {
		return nil, newErr(ErrInvalidSentence, "message type %d is not 25", msgType)
	}

	mmsi := uint32(bv.pickUint(8, 30))
	addressed := bv.pickBool(38)
	structured := bv.pickBool(39)

	offset := 40
	msg := &SingleSlotBinary{Station: station, MMSI: mmsi}

	if addressed {
		if !bv.sufficientBits(offset + 30) {
			return nil, newErr(ErrInvalidSentence, "type 25 payload too short for dest MMSI")
		}
		dest := uint32(bv.pickUint(offset, 30))
		msg.DestMMSI = &dest
		offset += 30
	}

	if structured {
		if !bv.sufficientBits(offset + 16) {
			return nil, newErr(ErrInvalidSentence, "type 25 payload too short for app id")
		}
		appID := uint16(bv.pickUint(offset, 16))
		msg.AppID = &appID
		offset += 16
	}

	msg.Data = sliceBits(bv, offset)
	return msg, nil
}
