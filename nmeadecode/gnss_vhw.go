package nmeadecode

func decodeVHW(env Envelope) (ParsedMessage, error) {
	f := env.Fields
	headingTrue, err := parseOptionalFloat(field(f, 0))
	if err != nil {
		return nil, err
	}
	headingMag, err := parseOptionalFloat(field(f, 2))
	if err != nil {
		return nil, err
	}
	speedKnots, err := parseOptionalFloat(field(f, 4))
	if err != nil {
		return nil, err
	}
	speedKmh, err := parseOptionalFloat(field(f, 6))
	if err != nil {
		return nil, err
	}
	return &VHW{
		HeadingTrue:     headingTrue,
		HeadingMagnetic: headingMag,
		SpeedKnots:      speedKnots,
		SpeedKmh:        speedKmh,
	}, nil
}
