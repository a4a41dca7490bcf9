package nmeadecode

func decodeHDT(env Envelope) (ParsedMessage, error) {
	heading, err := parseOptionalFloat(field(env.Fields, 0))
	if err != nil {
		return nil, err
	}
	return &HDT{HeadingTrue: heading}, nil
}
