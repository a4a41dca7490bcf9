package nmeadecode

// decodeAisPayload dispatches a fully assembled AIS bit vector to its
// per-type decoder based on the 6-bit message type field every payload
// starts with.
func decodeAisPayload(bv *bitVec, talker string) (ParsedMessage, error) {
	if bv.Len() < 6 {
		return nil, newErr(ErrInvalidSentence, "payload too short to carry a message type")
	}
	station := stationFromTalker(talker)
	msgType := int(bv.pickUint(0, 6))

	switch msgType {
	case 1, 2, 3:
		return decodeT1T2T3(bv, station)
	case 4, 11:
		return decodeT4T11(bv, station)
	case 5:
		return decodeT5(bv, station)
	case 6, 8:
		return decodeT6T8(bv, station)
	case 7, 13:
		return decodeT7T13(bv, station)
	case 9:
		return decodeT9(bv, station)
	case 10:
		return decodeT10(bv, station)
	case 12:
		return decodeT12(bv, station)
	case 14:
		return decodeT14(bv, station)
	case 15:
		return decodeT15(bv, station)
	case 16:
		return decodeT16(bv, station)
	case 17:
		return decodeT17(bv, station)
	case 18:
		return decodeT18(bv, station)
	case 19:
		return decodeT19(bv, station)
	case 20:
		return decodeT20(bv, station)
	case 21:
		return decodeT21(bv, station)
	case 22:
		return decodeT22(bv, station)
	case 23:
		return decodeT23(bv, station)
	case 24:
		return decodeT24(bv, station)
	case 25:
		return decodeT25(bv, station)
	case 26:
		return decodeT26(bv, station)
	case 27:
		return decodeT27(bv, station)
	default:
		return Unsupported{SentenceOrType: "AIS type"}, nil
	}
}
