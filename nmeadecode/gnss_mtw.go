package nmeadecode

func decodeMTW(env Envelope) (ParsedMessage, error) {
	temp, err := parseOptionalFloat(field(env.Fields, 0))
	if err != nil {
		return nil, err
	}
	return &MTW{TemperatureCelsius: temp}, nil
}
