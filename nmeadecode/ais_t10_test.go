package nmeadecode

import "testing"

func TestDecodeType10UTCInquiry(t *testing.T) {
	msg, err := Parse("!AIVDM,1,1,,A,:5M:Ih1GJdo4,0*7C", nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ui, ok := msg.(*UTCInquiry)
	if !ok {
		t.Fatalf("got %T, want *UTCInquiry", msg)
	}
	if ui.SourceMMSI != 366123456 {
		t.Errorf("SourceMMSI = %d, want 366123456", ui.SourceMMSI)
	}
	if ui.DestinationMMSI != 366654321 {
		t.Errorf("DestinationMMSI = %d, want 366654321", ui.DestinationMMSI)
	}
}
