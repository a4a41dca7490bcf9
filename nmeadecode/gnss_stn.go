package nmeadecode

func decodeSTN(env Envelope) (ParsedMessage, error) {
	n, err := parseOptionalInt(field(env.Fields, 0))
	if err != nil {
		return nil, err
	}
	return &STN{TalkerIDNumber: n}, nil
}
