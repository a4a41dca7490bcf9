package nmeadecode

// decodeT17 builds a DGNSSBroadcast from a DGNSS broadcast binary message
// (type 17). Unlike the position reports, these coordinates are 1/10 minute
// resolution (divide by 600, not 600000) and carry their own sentinels.
func decodeT17(bv *bitVec, station Station) (ParsedMessage, error) {
	if !bv.sufficientBits(80) {
		return nil, newErr(ErrInvalidSentence, "type 17 payload too short: %d bits", bv.Len())
	}
	msgType := int(bv.pickUint(0, 6))
	if msgType != 17 {
		return nil, newErr(ErrInvalidSentence, "message type %d is not 17", msgType)
	}

	mmsi := uint32(bv.pickUint(8, 30))

	var lon *float64
	if raw := bv.pickInt(40, 18); raw != 0x1a838 {
		v := float64(raw) / 600.0
		lon = &v
	}
	var lat *float64
	if raw := bv.pickInt(58, 17); raw != 0xd548 {
		v := float64(raw) / 600.0
		lat = &v
	}

	payload := sliceBits(bv, 80)

	return &DGNSSBroadcast{
		Station:   station,
		MMSI:      mmsi,
		Latitude:  lat,
		Longitude: lon,
		Payload:   payload,
	}, nil
}
