package nmeadecode

// decodeT23 builds a GroupAssignment from a group assignment command
// (type 23).
func decodeT23(bv *bitVec, station Station) (ParsedMessage, error) {
	if !bv.sufficientBits(160) {
		return nil, newErr(ErrInvalidSentence, "type 23 payload too short: %d bits", bv.Len())
	}
	msgType := int(bv.pickUint(0, 6))
	if msgType != 23 {
		return nil, newErr(ErrInvalidSentence, "message type %d is not 23", msgType)
	}

	sourceMMSI := uint32(bv.pickUint(8, 30))
	neLon := float64(bv.pickInt(40, 18)) / 10.0
	neLat := float64(bv.pickInt(58, 17)) / 10.0
	swLon := float64(bv.pickInt(75, 18)) / 10.0
	swLat := float64(bv.pickInt(93, 17)) / 10.0

	stationType := StationType(bv.pickUint(110, 4))
	shipType := newShipType(uint8(bv.pickUint(114, 8)))
	interval := StationInterval(bv.pickUint(144, 4))
	quiet := uint8(bv.pickUint(148, 4))

	return &GroupAssignment{
		Station:     station,
		SourceMMSI:  sourceMMSI,
		NELongitude: &neLon,
		NELatitude:  &neLat,
		SWLongitude: &swLon,
		SWLatitude:  &swLat,
		StationType: stationType,
		ShipType:    shipType,
		Interval:    interval,
		Quiet:       quiet,
	}, nil
}
