package nmeadecode

func decodeDPT(env Envelope) (ParsedMessage, error) {
	f := env.Fields
	depth, err := parseOptionalFloat(field(f, 0))
	if err != nil {
		return nil, err
	}
	offset, err := parseOptionalFloat(field(f, 1))
	if err != nil {
		return nil, err
	}
	maxRange, err := parseOptionalFloat(field(f, 2))
	if err != nil {
		return nil, err
	}
	return &DPT{DepthMeters: depth, Offset: offset, MaxRange: maxRange}, nil
}
