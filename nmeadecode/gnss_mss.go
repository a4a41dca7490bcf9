package nmeadecode

func decodeMSS(env Envelope) (ParsedMessage, error) {
	f := env.Fields
	strength, err := parseOptionalFloat(field(f, 0))
	if err != nil {
		return nil, err
	}
	snr, err := parseOptionalFloat(field(f, 1))
	if err != nil {
		return nil, err
	}
	freq, err := parseOptionalFloat(field(f, 2))
	if err != nil {
		return nil, err
	}
	bitrate, err := parseOptionalFloat(field(f, 3))
	if err != nil {
		return nil, err
	}
	return &MSS{
		SignalStrength: strength,
		SignalToNoise:  snr,
		FrequencyKHz:   freq,
		BeaconBitRate:  bitrate,
	}, nil
}
