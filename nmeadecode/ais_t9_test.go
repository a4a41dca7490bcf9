package nmeadecode

import "testing"

func TestDecodeType9StandardSARAircraft(t *testing.T) {
	msg, err := Parse("!AIVDM,1,1,,A,91b5>1mo3rruAe0H25P3Q7P0<30q,0*42", nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sar, ok := msg.(*StandardSARAircraft)
	if !ok {
		t.Fatalf("got %T, want *StandardSARAircraft", msg)
	}
	if sar.MMSI != 111234567 {
		t.Errorf("MMSI = %d, want 111234567", sar.MMSI)
	}
	if sar.Altitude == nil || *sar.Altitude != 1500 {
		t.Errorf("Altitude = %v, want 1500", sar.Altitude)
	}
	if sar.SogKnots == nil || *sar.SogKnots != 250 {
		t.Errorf("SogKnots = %v, want 250", sar.SogKnots)
	}
	if !sar.HighPositionAccuracy {
		t.Error("HighPositionAccuracy = false, want true")
	}
	if sar.Longitude == nil || !floatsClose(*sar.Longitude, -70.5) {
		t.Errorf("Longitude = %v, want -70.5", sar.Longitude)
	}
	if sar.Latitude == nil || !floatsClose(*sar.Latitude, 42.0) {
		t.Errorf("Latitude = %v, want 42.0", sar.Latitude)
	}
	if sar.Cog == nil || !floatsClose(*sar.Cog, 90.0) {
		t.Errorf("Cog = %v, want 90.0", sar.Cog)
	}
	if sar.TimestampSecond != 30 {
		t.Errorf("TimestampSecond = %d, want 30", sar.TimestampSecond)
	}
	if !sar.Assigned {
		t.Error("Assigned = false, want true")
	}
	if !sar.RaimFlag {
		t.Error("RaimFlag = false, want true")
	}
	if sar.RadioStatus != 12345 {
		t.Errorf("RadioStatus = %d, want 12345", sar.RadioStatus)
	}
}
