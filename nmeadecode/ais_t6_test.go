package nmeadecode

import "testing"

func TestDecodeType6AddressedBinaryMessage(t *testing.T) {
	msg, err := Parse("!AIVDM,1,1,,A,65M:Ih1GJdo4>d`PDhht,2*28", nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	bm, ok := msg.(*BinaryMessage)
	if !ok {
		t.Fatalf("got %T, want *BinaryMessage", msg)
	}
	if bm.MMSI != 366123456 {
		t.Errorf("MMSI = %d, want 366123456", bm.MMSI)
	}
	if bm.DestinationMMSI == nil || *bm.DestinationMMSI != 366654321 {
		t.Errorf("DestinationMMSI = %v, want 366654321", bm.DestinationMMSI)
	}
	if bm.RetransmitFlag {
		t.Error("RetransmitFlag = true, want false")
	}
	if bm.DAC != 235 {
		t.Errorf("DAC = %d, want 235", bm.DAC)
	}
	if bm.FID != 10 {
		t.Errorf("FID = %d, want 10", bm.FID)
	}
	if bm.Data == nil || bm.Data.Len() != 30 {
		t.Errorf("Data length = %v, want 30 bits", bm.Data)
	}
}

func TestDecodeType8BroadcastBinaryMessage(t *testing.T) {
	msg, err := Parse("!AIVDM,1,1,,A,85M:Ih00Bi0E0LLP,4*47", nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	bm, ok := msg.(*BinaryMessage)
	if !ok {
		t.Fatalf("got %T, want *BinaryMessage", msg)
	}
	if bm.MMSI != 366123456 {
		t.Errorf("MMSI = %d, want 366123456", bm.MMSI)
	}
	if bm.DestinationMMSI != nil {
		t.Errorf("DestinationMMSI = %v, want nil for a broadcast", bm.DestinationMMSI)
	}
	if bm.DAC != 1 {
		t.Errorf("DAC = %d, want 1", bm.DAC)
	}
	if bm.FID != 11 {
		t.Errorf("FID = %d, want 11", bm.FID)
	}
}
