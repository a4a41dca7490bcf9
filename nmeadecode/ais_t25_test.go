package nmeadecode

import "testing"

func TestDecodeType25SingleSlotBinaryAddressedStructured(t *testing.T) {
	msg, err := Parse("!AIVDM,1,1,,A,I5M:Ih=GJdo44lR2@,4*7F", nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ssb, ok := msg.(*SingleSlotBinary)
	if !ok {
		t.Fatalf("got %T, want *SingleSlotBinary", msg)
	}
	if ssb.MMSI != 366123456 {
		t.Errorf("MMSI = %d, want 366123456", ssb.MMSI)
	}
	if ssb.DestMMSI == nil || *ssb.DestMMSI != 366654321 {
		t.Errorf("DestMMSI = %v, want 366654321", ssb.DestMMSI)
	}
	if ssb.AppID == nil || *ssb.AppID != 1234 {
		t.Errorf("AppID = %v, want 1234", ssb.AppID)
	}
	if ssb.Data == nil || ssb.Data.Len() != 12 {
		t.Errorf("Data length = %v, want 12 bits", ssb.Data)
	}
}
