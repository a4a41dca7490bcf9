package nmeadecode

func decodeGSA(env Envelope) (ParsedMessage, error) {
	f := env.Fields
	fixType, err := atoiOrZero(field(f, 1))
	if err != nil {
		return nil, err
	}

	var prns [12]*int
	for i := 0; i < 12; i++ {
		n, err := parseOptionalInt(field(f, 2+i))
		if err != nil {
			return nil, err
		}
		prns[i] = n
	}

	pdop, err := parseOptionalFloat(field(f, 14))
	if err != nil {
		return nil, err
	}
	hdop, err := parseOptionalFloat(field(f, 15))
	if err != nil {
		return nil, err
	}
	vdop, err := parseOptionalFloat(field(f, 16))
	if err != nil {
		return nil, err
	}

	return &GSA{
		System:        resolveSystem(env.Talker),
		AutoMode:      field(f, 0) == "A",
		FixType:       fixType,
		SatellitePRNs: prns,
		PDOP:          pdop,
		HDOP:          hdop,
		VDOP:          vdop,
	}, nil
}
