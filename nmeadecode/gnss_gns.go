package nmeadecode

func decodeGNS(env Envelope) (ParsedMessage, error) {
	f := env.Fields
	tod, err := parseTimeOfDay(field(f, 0))
	if err != nil {
		return nil, err
	}
	ts, err := composeTimestamp("", tod)
	if err != nil {
		return nil, err
	}
	lat, err := parseLatitude(field(f, 1), field(f, 2))
	if err != nil {
		return nil, err
	}
	lon, err := parseLongitude(field(f, 3), field(f, 4))
	if err != nil {
		return nil, err
	}
	numSats, err := parseOptionalInt(field(f, 6))
	if err != nil {
		return nil, err
	}
	hdop, err := parseOptionalFloat(field(f, 7))
	if err != nil {
		return nil, err
	}
	altitude, err := parseOptionalFloat(field(f, 8))
	if err != nil {
		return nil, err
	}
	geoidSep, err := parseOptionalFloat(field(f, 9))
	if err != nil {
		return nil, err
	}
	dgpsAge, err := parseOptionalFloat(field(f, 10))
	if err != nil {
		return nil, err
	}

	return &GNS{
		System:         resolveSystem(env.Talker),
		Time:           ts,
		Latitude:       lat,
		Longitude:      lon,
		Mode:           field(f, 5),
		NumSatellites:  numSats,
		HDOP:           hdop,
		AltitudeMeters: altitude,
		GeoidSepMeters: geoidSep,
		DGPSAgeSeconds: dgpsAge,
		DGPSStationID:  parseOptionalString(field(f, 11)),
	}, nil
}
