package nmeadecode

func decodeVTG(env Envelope) (ParsedMessage, error) {
	f := env.Fields
	trackTrue, err := parseOptionalFloat(field(f, 0))
	if err != nil {
		return nil, err
	}
	trackMag, err := parseOptionalFloat(field(f, 2))
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

	return &VTG{
		System:        resolveSystem(env.Talker),
		TrackTrue:     trackTrue,
		TrackMagnetic: trackMag,
		SpeedKnots:    speedKnots,
		SpeedKmh:      speedKmh,
		FAAMode:       parseOptionalString(field(f, 8)),
	}, nil
}
