package nmeadecode

import "testing"

func TestDecodeType12AddressedSafetyMessage(t *testing.T) {
	msg, err := Parse("!AIVDM,1,1,,A,<5M:Ih1GJdo485<<?PG?B<4,0*2A", nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	as, ok := msg.(*AddressedSafety)
	if !ok {
		t.Fatalf("got %T, want *AddressedSafety", msg)
	}
	if as.SourceMMSI != 366123456 {
		t.Errorf("SourceMMSI = %d, want 366123456", as.SourceMMSI)
	}
	if as.DestinationMMSI != 366654321 {
		t.Errorf("DestinationMMSI = %d, want 366654321", as.DestinationMMSI)
	}
	if as.RetransmitFlag {
		t.Error("RetransmitFlag = true, want false")
	}
	if as.Text != "HELLO WORLD" {
		t.Errorf("Text = %q, want HELLO WORLD", as.Text)
	}
}
