package nmeadecode

func decodeDTM(env Envelope) (ParsedMessage, error) {
	f := env.Fields
	latOff, err := parseOptionalFloat(field(f, 2))
	if err != nil {
		return nil, err
	}
	if latOff != nil && field(f, 3) == "S" {
		v := -*latOff
		latOff = &v
	}
	lonOff, err := parseOptionalFloat(field(f, 4))
	if err != nil {
		return nil, err
	}
	if lonOff != nil && field(f, 5) == "W" {
		v := -*lonOff
		lonOff = &v
	}
	altOff, err := parseOptionalFloat(field(f, 6))
	if err != nil {
		return nil, err
	}

	return &DTM{
		LocalDatum:     field(f, 0),
		LocalDatumSub:  field(f, 1),
		LatOffset:      latOff,
		LonOffset:      lonOff,
		AltOffset:      altOff,
		ReferenceDatum: field(f, 7),
	}, nil
}
