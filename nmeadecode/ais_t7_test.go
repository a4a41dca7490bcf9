package nmeadecode

import "testing"

func TestDecodeType7BinaryAcknowledge(t *testing.T) {
	msg, err := Parse("!AIVDM,1,1,,A,739Eu00jMUc5,0*0F", nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ack, ok := msg.(*Acknowledge)
	if !ok {
		t.Fatalf("got %T, want *Acknowledge", msg)
	}
	if ack.SourceMMSI != 211123456 {
		t.Errorf("SourceMMSI = %d, want 211123456", ack.SourceMMSI)
	}
	if ack.MMSI1 != 211654321 {
		t.Errorf("MMSI1 = %d, want 211654321", ack.MMSI1)
	}
	if ack.MMSI1Seq != 1 {
		t.Errorf("MMSI1Seq = %d, want 1", ack.MMSI1Seq)
	}
	if ack.MMSI2 != 0 || ack.MMSI3 != 0 || ack.MMSI4 != 0 {
		t.Errorf("expected only MMSI1 set, got MMSI2=%d MMSI3=%d MMSI4=%d", ack.MMSI2, ack.MMSI3, ack.MMSI4)
	}
}
