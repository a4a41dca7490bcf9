package nmeadecode

func decodeGLL(env Envelope) (ParsedMessage, error) {
	f := env.Fields
	lat, err := parseLatitude(field(f, 0), field(f, 1))
	if err != nil {
		return nil, err
	}
	lon, err := parseLongitude(field(f, 2), field(f, 3))
	if err != nil {
		return nil, err
	}
	tod, err := parseTimeOfDay(field(f, 4))
	if err != nil {
		return nil, err
	}
	ts, err := composeTimestamp("", tod)
	if err != nil {
		return nil, err
	}

	return &GLL{
		System:    resolveSystem(env.Talker),
		Latitude:  lat,
		Longitude: lon,
		Time:      ts,
		Active:    field(f, 5) == "A",
		FAAMode:   parseOptionalString(field(f, 6)),
	}, nil
}
