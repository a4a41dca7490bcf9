package nmeadecode

func decodeDBS(env Envelope) (ParsedMessage, error) {
	f := env.Fields
	feet, err := parseOptionalFloat(field(f, 0))
	if err != nil {
		return nil, err
	}
	meters, err := parseOptionalFloat(field(f, 2))
	if err != nil {
		return nil, err
	}
	fathoms, err := parseOptionalFloat(field(f, 4))
	if err != nil {
		return nil, err
	}
	return &DBS{DepthFeet: feet, DepthMeters: meters, DepthFathoms: fathoms}, nil
}
