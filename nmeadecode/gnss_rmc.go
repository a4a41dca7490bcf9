package nmeadecode

func decodeRMC(env Envelope) (ParsedMessage, error) {
	f := env.Fields
	tod, err := parseTimeOfDay(field(f, 0))
	if err != nil {
		return nil, err
	}
	ts, err := composeTimestamp(field(f, 8), tod)
	if err != nil {
		return nil, err
	}
	lat, err := parseLatitude(field(f, 2), field(f, 3))
	if err != nil {
		return nil, err
	}
	lon, err := parseLongitude(field(f, 4), field(f, 5))
	if err != nil {
		return nil, err
	}
	speed, err := parseOptionalFloat(field(f, 6))
	if err != nil {
		return nil, err
	}
	track, err := parseOptionalFloat(field(f, 7))
	if err != nil {
		return nil, err
	}
	magVar, err := parseOptionalFloat(field(f, 9))
	if err != nil {
		return nil, err
	}
	if magVar != nil && (field(f, 10) == "W") {
		v := -*magVar
		magVar = &v
	}

	return &RMC{
		System:            resolveSystem(env.Talker),
		Time:              ts,
		Active:            field(f, 1) == "A",
		Latitude:          lat,
		Longitude:         lon,
		SpeedKnots:        speed,
		TrackTrueDegrees:  track,
		MagneticVariation: magVar,
		FAAMode:           parseOptionalString(field(f, 11)),
	}, nil
}
