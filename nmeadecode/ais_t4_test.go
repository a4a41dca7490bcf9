package nmeadecode

import "testing"

func TestDecodeType4BaseStationReport(t *testing.T) {
	msg, err := Parse("!AIVDM,1,1,,A,43HOI:1vPofNeP:O<@Ku=i1020nd,0*5A", nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	bsr, ok := msg.(*BaseStationReport)
	if !ok {
		t.Fatalf("got %T, want *BaseStationReport", msg)
	}
	if bsr.MMSI != 227006760 {
		t.Errorf("MMSI = %d, want 227006760", bsr.MMSI)
	}
	if !bsr.HighPositionAccuracy {
		t.Error("HighPositionAccuracy = false, want true")
	}
	if bsr.Timestamp == nil {
		t.Fatal("Timestamp = nil, want set")
	}
	want := "2024-03-15T14:30:45Z"
	if got := bsr.Timestamp.Format("2006-01-02T15:04:05Z"); got != want {
		t.Errorf("Timestamp = %s, want %s", got, want)
	}
	if bsr.Latitude == nil || !floatsClose(*bsr.Latitude, 48.8575) {
		t.Errorf("Latitude = %v, want 48.8575", bsr.Latitude)
	}
	if bsr.Longitude == nil || !floatsClose(*bsr.Longitude, 2.291) {
		t.Errorf("Longitude = %v, want 2.291", bsr.Longitude)
	}
	if bsr.PositionFixType != FixGPS {
		t.Errorf("PositionFixType = %v, want FixGPS", bsr.PositionFixType)
	}
	if !bsr.RaimFlag {
		t.Error("RaimFlag = false, want true")
	}
	if bsr.RadioStatus != 3500 {
		t.Errorf("RadioStatus = %d, want 3500", bsr.RadioStatus)
	}
}
