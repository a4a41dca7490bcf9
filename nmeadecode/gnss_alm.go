package nmeadecode

// decodeALM parses an almanac data sentence. The orbital parameter fields
// are carried as raw hex-string text per the NMEA standard; interpreting
// them into physical units is left to the caller, same as the reference
// decoder leaves DAC/FID payloads opaque.
func decodeALM(env Envelope) (ParsedMessage, error) {
	f := env.Fields
	total, err := atoiOrZero(field(f, 0))
	if err != nil {
		return nil, err
	}
	number, err := atoiOrZero(field(f, 1))
	if err != nil {
		return nil, err
	}
	prn, err := atoiOrZero(field(f, 2))
	if err != nil {
		return nil, err
	}
	week, err := parseOptionalInt(field(f, 3))
	if err != nil {
		return nil, err
	}

	return &ALM{
		TotalMessages:            total,
		MessageNumber:            number,
		SatellitePRN:             prn,
		GpsWeek:                  week,
		SVHealth:                 parseOptionalString(field(f, 4)),
		Eccentricity:             parseOptionalString(field(f, 5)),
		AlmanacReferenceTime:     parseOptionalString(field(f, 6)),
		InclinationAngle:         parseOptionalString(field(f, 7)),
		RateOfRightAscension:     parseOptionalString(field(f, 8)),
		RootSemiMajorAxis:        parseOptionalString(field(f, 9)),
		ArgumentOfPerigee:        parseOptionalString(field(f, 10)),
		LongitudeOfAscensionNode: parseOptionalString(field(f, 11)),
		MeanAnomaly:              parseOptionalString(field(f, 12)),
		Af0:                      parseOptionalString(field(f, 13)),
		Af1:                      parseOptionalString(field(f, 14)),
	}, nil
}
