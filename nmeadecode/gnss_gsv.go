package nmeadecode

func decodeGSV(env Envelope) (ParsedMessage, error) {
	f := env.Fields
	total, err := atoiOrZero(field(f, 0))
	if err != nil {
		return nil, err
	}
	number, err := atoiOrZero(field(f, 1))
	if err != nil {
		return nil, err
	}
	inView, err := atoiOrZero(field(f, 2))
	if err != nil {
		return nil, err
	}

	var sats []GsvSatellite
	for i := 0; i < 4; i++ {
		base := 3 + i*4
		prnStr := field(f, base)
		if prnStr == "" {
			break
		}
		prn, err := atoiOrZero(prnStr)
		if err != nil {
			return nil, err
		}
		elev, err := parseOptionalInt(field(f, base+1))
		if err != nil {
			return nil, err
		}
		azi, err := parseOptionalInt(field(f, base+2))
		if err != nil {
			return nil, err
		}
		snr, err := parseOptionalInt(field(f, base+3))
		if err != nil {
			return nil, err
		}
		sats = append(sats, GsvSatellite{PRN: prn, Elevation: elev, Azimuth: azi, SNR: snr})
	}

	return &GSV{
		System:           resolveSystem(env.Talker),
		TotalMessages:    total,
		MessageNumber:    number,
		SatellitesInView: inView,
		Satellites:       sats,
	}, nil
}
