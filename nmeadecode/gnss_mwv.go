package nmeadecode

func decodeMWV(env Envelope) (ParsedMessage, error) {
	f := env.Fields
	angle, err := parseOptionalFloat(field(f, 0))
	if err != nil {
		return nil, err
	}
	speed, err := parseOptionalFloat(field(f, 2))
	if err != nil {
		return nil, err
	}
	return &MWV{
		WindAngle: angle,
		Reference: field(f, 1),
		WindSpeed: speed,
		SpeedUnit: field(f, 3),
		DataValid: field(f, 4) == "A",
	}, nil
}
