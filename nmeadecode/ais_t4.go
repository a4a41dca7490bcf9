package nmeadecode

import "time"

// decodeT4T11 builds a BaseStationReport from a base station report (type 4)
// or UTC/date response (type 11); both share the same payload layout.
func decodeT4T11(bv *bitVec, station Station) (ParsedMessage, error) {
	if !bv.sufficientBits(168) {
		return nil, newErr(ErrInvalidSentence, "type 4/11 payload too short: %d bits", bv.Len())
	}

	msgType := int(bv.pickUint(0, 6))
	if msgType != 4 && msgType != 11 {
		return nil, newErr(ErrInvalidSentence, "message type %d is not 4/11", msgType)
	}

	mmsi := uint32(bv.pickUint(8, 30))
	year := int(bv.pickUint(38, 14))
	month := int(bv.pickUint(52, 4))
	day := int(bv.pickUint(56, 5))
	hour := int(bv.pickUint(61, 5))
	minute := int(bv.pickUint(66, 6))
	second := int(bv.pickUint(72, 6))

	highAccuracy := bv.pickBool(78)
	lon := longitude28(bv, 79)
	lat := latitude27(bv, 107)
	fixType := newPositionFixType(uint8(bv.pickUint(134, 4)))
	raim := bv.pickBool(148)
	radio := uint32(bv.pickUint(149, 19))

	ts := buildBaseStationTimestamp(year, month, day, hour, minute, second)

	return &BaseStationReport{
		Station:              station,
		MMSI:                 mmsi,
		Timestamp:            ts,
		HighPositionAccuracy: highAccuracy,
		Latitude:             lat,
		Longitude:            lon,
		PositionFixType:      fixType,
		RaimFlag:             raim,
		RadioStatus:          radio,
	}, nil
}

// buildBaseStationTimestamp returns nil when any field carries its "not
// available" sentinel (year 0, or month/day/hour/minute/second out of
// range), rather than constructing a misleading zero-ish time.Time.
func buildBaseStationTimestamp(year, month, day, hour, minute, second int) *time.Time {
	if year == 0 || month == 0 || month > 12 || day == 0 || day > 31 ||
		hour > 23 || minute > 59 || second > 59 {
		return nil
	}
	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	return &t
}
