package nmeadecode

import "time"

func decodeZDA(env Envelope) (ParsedMessage, error) {
	f := env.Fields
	tod, err := parseTimeOfDay(field(f, 0))
	if err != nil {
		return nil, err
	}
	day, err := parseOptionalInt(field(f, 1))
	if err != nil {
		return nil, err
	}
	month, err := parseOptionalInt(field(f, 2))
	if err != nil {
		return nil, err
	}
	year, err := parseOptionalInt(field(f, 3))
	if err != nil {
		return nil, err
	}
	localHours, err := parseOptionalInt(field(f, 4))
	if err != nil {
		return nil, err
	}
	localMins, err := parseOptionalInt(field(f, 5))
	if err != nil {
		return nil, err
	}

	var ts *time.Time
	if tod != nil && day != nil && month != nil && year != nil {
		t := time.Date(*year, time.Month(*month), *day, tod.Hour, tod.Minute, tod.Second, tod.Nanosecond, time.UTC)
		ts = &t
	}

	return &ZDA{
		Time:           ts,
		LocalZoneHours: localHours,
		LocalZoneMins:  localMins,
	}, nil
}
