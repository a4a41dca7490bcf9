package nmeadecode

// decodeT22 builds a ChannelManagement from a channel management message
// (type 22). The addressed flag at bit 139 picks whether bits 69..138 hold
// a geographic zone or two destination MMSIs.
func decodeT22(bv *bitVec, station Station) (ParsedMessage, error) {
	if !bv.sufficientBits(145) {
		return nil, newErr(ErrInvalidSentence, "type 22 payload too short: %d bits", bv.Len())
	}
	msgType := int(bv.pickUint(0, 6))
	if msgType != 22 {
		return nil, newErr(ErrInvalidSentence, "message type %d is not 22", msgType)
	}

	sourceMMSI := uint32(bv.pickUint(8, 30))
	channelA := uint16(bv.pickUint(40, 12))
	channelB := uint16(bv.pickUint(52, 12))
	txRxMode := uint8(bv.pickUint(64, 4))
	power := bv.pickBool(68)
	addressed := bv.pickBool(139)
	bandA := bv.pickBool(140)
	bandB := bv.pickBool(141)
	zonesize := uint8(bv.pickUint(142, 3))

	cm := &ChannelManagement{
		Station:      station,
		SourceMMSI:   sourceMMSI,
		ChannelA:     channelA,
		ChannelB:     channelB,
		TxRxMode:     txRxMode,
		Power:        power,
		Addressed:    addressed,
		ChannelABand: bandA,
		ChannelBBand: bandB,
		Zonesize:     zonesize,
	}

	if addressed {
		cm.DestMMSI1 = uint32(bv.pickUint(69, 30))
		cm.DestMMSI2 = uint32(bv.pickUint(104, 30))
		return cm, nil
	}

	neLon := float64(bv.pickInt(69, 18)) / 10.0
	neLat := float64(bv.pickInt(87, 17)) / 10.0
	swLon := float64(bv.pickInt(104, 18)) / 10.0
	swLat := float64(bv.pickInt(122, 17)) / 10.0
	cm.NELongitude = &neLon
	cm.NELatitude = &neLat
	cm.SWLongitude = &swLon
	cm.SWLatitude = &swLat

	return cm, nil
}
