package nmeadecode

import "math"

// commonHeader extracts the message type (6 bits), repeat indicator
// (2 bits) and MMSI (30 bits) every AIS payload type shares, and verifies
// the message type matches what the caller expects.
func commonHeader(bv *bitVec, wantType int) (mmsi uint32, err error) {
	msgType := bv.pickUint(0, 6)
	if int(msgType) != wantType {
		return 0, newErr(ErrInvalidSentence, "message type %d does not match expected %d", msgType, wantType)
	}
	return uint32(bv.pickUint(8, 30)), nil
}

// rateOfTurn decodes the 8-bit signed raw ROT field into a degrees/minute
// value plus direction tag, per ITU-R M.1371: -128 is no info, values in
// -126..126 follow sign*(raw/4.733)^2 (with -1..1 tagged as not turning),
// and -127/127 mean "turning at >= 5 deg/30s" without a precise rate.
func rateOfTurn(raw int64) (*float64, RotDirection) {
	switch {
	case raw == -128:
		return nil, RotNoInfo
	case raw <= -2 && raw >= -126:
		v := -math.Pow(float64(-raw)/4.733, 2)
		return &v, RotPort
	case raw == -127:
		return nil, RotPort
	case raw > -2 && raw < 2:
		v := math.Copysign(math.Pow(float64(raw)/4.733, 2), float64(raw))
		return &v, RotNotTurning
	case raw >= 2 && raw <= 126:
		v := math.Pow(float64(raw)/4.733, 2)
		return &v, RotStarboard
	case raw == 127:
		return nil, RotStarboard
	default:
		return nil, RotNoInfo
	}
}

func sogKnotsTenths(bv *bitVec, offset int) *float64 {
	raw := bv.pickUint(offset, 10)
	if raw >= 1023 {
		return nil
	}
	v := float64(raw) * 0.1
	return &v
}

func cogTenths(bv *bitVec, offset int) *float64 {
	raw := bv.pickUint(offset, 12)
	if raw == 0xE10 {
		return nil
	}
	v := float64(raw) * 0.1
	return &v
}

func headingTrue(bv *bitVec, offset int) *float64 {
	raw := bv.pickUint(offset, 9)
	if raw == 511 {
		return nil
	}
	v := float64(raw)
	return &v
}

func latitude27(bv *bitVec, offset int) *float64 {
	raw := bv.pickInt(offset, 27)
	if raw == 0x3412140 {
		return nil
	}
	v := float64(raw) / 600000.0
	return &v
}

func longitude28(bv *bitVec, offset int) *float64 {
	raw := bv.pickInt(offset, 28)
	if raw == 0x6791AC0 {
		return nil
	}
	v := float64(raw) / 600000.0
	return &v
}

func positioningSystemMetaFromSecond(sec uint64) *PositioningSystemMeta {
	var m PositioningSystemMeta
	switch sec {
	case 60:
		return nil
	case 61:
		m = PositioningManualInputMode
	case 62:
		m = PositioningDeadReckoningMode
	case 63:
		m = PositioningInoperative
	default:
		m = PositioningOperative
	}
	return &m
}

func specialManoeuvre(raw uint64) *bool {
	switch raw {
	case 1, 2:
		v := true
		return &v
	default:
		return nil
	}
}

func boolPtr(v bool) *bool    { return &v }
func u32Ptr(v uint32) *uint32 { return &v }
func u16Ptr(v uint16) *uint16 { return &v }
func u8Ptr(v uint8) *uint8    { return &v }
