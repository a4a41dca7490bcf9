package nmeadecode

import (
	"strconv"
	"strings"
	"time"
)

// sentinelDate is the fixed fallback date used to complete a time-of-day
// value whose sentence carries no date field (GGA, GLL, GNS). Never the wall
// clock: this keeps decoding reproducible. The AIS type 5 ETA is not
// completed to a timestamp; it keeps its raw month/day/hour/minute fields.
var sentinelDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// parseCoordinate converts a DDDMM.mmmm field plus an N/S or E/W hemisphere
// letter into signed decimal degrees. An empty value field means absent.
// minDigits is 2 for latitude (DD) and 3 for longitude (DDD).
func parseCoordinate(value, hemisphere string, minDigits int) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	dot := strings.IndexByte(value, '.')
	if dot < minDigits {
		return nil, newErr(ErrInvalidSentence, "malformed coordinate %q", value)
	}
	degStr := value[:minDigits]
	minStr := value[minDigits:]
	deg, err := strconv.ParseFloat(degStr, 64)
	if err != nil {
		return nil, newErr(ErrInvalidSentence, "malformed coordinate degrees %q", degStr)
	}
	minutes, err := strconv.ParseFloat(minStr, 64)
	if err != nil {
		return nil, newErr(ErrInvalidSentence, "malformed coordinate minutes %q", minStr)
	}
	result := deg + minutes/60.0

	switch strings.ToUpper(hemisphere) {
	case "S", "W":
		result = -result
	case "N", "E", "":
		// default to north/east on an empty or unrecognised hemisphere letter
	}
	return &result, nil
}

func parseLatitude(value, hemisphere string) (*float64, error) {
	return parseCoordinate(value, hemisphere, 2)
}

func parseLongitude(value, hemisphere string) (*float64, error) {
	return parseCoordinate(value, hemisphere, 3)
}

// timeOfDay is a parsed HHMMSS[.sss] field.
type timeOfDay struct {
	Hour, Minute, Second int
	Nanosecond           int
}

func parseTimeOfDay(value string) (*timeOfDay, error) {
	if value == "" {
		return nil, nil
	}
	whole := value
	frac := ""
	if dot := strings.IndexByte(value, '.'); dot >= 0 {
		whole = value[:dot]
		frac = value[dot+1:]
	}
	if len(whole) != 6 {
		return nil, newErr(ErrInvalidSentence, "malformed time %q", value)
	}
	hour, err1 := strconv.Atoi(whole[0:2])
	minute, err2 := strconv.Atoi(whole[2:4])
	second, err3 := strconv.Atoi(whole[4:6])
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, newErr(ErrInvalidSentence, "malformed time %q", value)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return nil, newErr(ErrInvalidSentence, "time out of range %q", value)
	}
	nsec := 0
	if frac != "" {
		for len(frac) < 9 {
			frac += "0"
		}
		frac = frac[:9]
		n, err := strconv.Atoi(frac)
		if err != nil {
			return nil, newErr(ErrInvalidSentence, "malformed fractional seconds %q", value)
		}
		nsec = n
	}
	return &timeOfDay{Hour: hour, Minute: minute, Second: second, Nanosecond: nsec}, nil
}

// parseDate parses a DDMMYY field, resolving the two-digit year with the
// window YY<=69 -> 20YY, else 19YY.
func parseDate(value string) (year, month, day int, err error) {
	if len(value) != 6 {
		return 0, 0, 0, newErr(ErrInvalidSentence, "malformed date %q", value)
	}
	d, err1 := strconv.Atoi(value[0:2])
	m, err2 := strconv.Atoi(value[2:4])
	y, err3 := strconv.Atoi(value[4:6])
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, newErr(ErrInvalidSentence, "malformed date %q", value)
	}
	if y <= 69 {
		y += 2000
	} else {
		y += 1900
	}
	return y, m, d, nil
}

// composeTimestamp builds a UTC time from an optional DDMMYY date field and
// a parsed time-of-day, defaulting to the sentinel date when dateField is
// empty.
func composeTimestamp(dateField string, tod *timeOfDay) (*time.Time, error) {
	if tod == nil {
		return nil, nil
	}
	base := sentinelDate
	if dateField != "" {
		y, m, d, err := parseDate(dateField)
		if err != nil {
			return nil, err
		}
		base = time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	}
	ts := time.Date(base.Year(), base.Month(), base.Day(), tod.Hour, tod.Minute, tod.Second, tod.Nanosecond, time.UTC)
	return &ts, nil
}

// parseOptionalFloat parses a field as float64, returning nil for an empty
// string and an error for an unparseable non-empty value.
func parseOptionalFloat(value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, newErr(ErrInvalidSentence, "malformed numeric field %q", value)
	}
	return &f, nil
}

func parseOptionalInt(value string) (*int, error) {
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, newErr(ErrInvalidSentence, "malformed integer field %q", value)
	}
	return &n, nil
}

func parseOptionalUint8(value string) (*uint8, error) {
	n, err := parseOptionalInt(value)
	if err != nil || n == nil {
		return nil, err
	}
	v := uint8(*n)
	return &v, nil
}

func parseOptionalUint16(value string) (*uint16, error) {
	n, err := parseOptionalInt(value)
	if err != nil || n == nil {
		return nil, err
	}
	v := uint16(*n)
	return &v, nil
}

// atoiOrZero parses value as an int, treating an empty string as zero.
func atoiOrZero(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, newErr(ErrInvalidSentence, "malformed integer field %q", value)
	}
	return n, nil
}

func parseOptionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func parseOptionalChar(value string) *rune {
	if value == "" {
		return nil
	}
	r := rune(value[0])
	return &r
}
