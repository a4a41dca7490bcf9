package nmeadecode

func decodeVBW(env Envelope) (ParsedMessage, error) {
	f := env.Fields
	longWater, err := parseOptionalFloat(field(f, 0))
	if err != nil {
		return nil, err
	}
	transWater, err := parseOptionalFloat(field(f, 1))
	if err != nil {
		return nil, err
	}
	longGround, err := parseOptionalFloat(field(f, 3))
	if err != nil {
		return nil, err
	}
	transGround, err := parseOptionalFloat(field(f, 4))
	if err != nil {
		return nil, err
	}
	return &VBW{
		LongitudinalWaterSpeed:  longWater,
		TransverseWaterSpeed:    transWater,
		WaterSpeedValid:         field(f, 2) == "A",
		LongitudinalGroundSpeed: longGround,
		TransverseGroundSpeed:   transGround,
		GroundSpeedValid:        field(f, 5) == "A",
	}, nil
}
