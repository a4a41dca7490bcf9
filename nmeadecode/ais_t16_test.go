package nmeadecode

import "testing"

func TestDecodeType16AssignmentModeSingleStation(t *testing.T) {
	msg, err := Parse("!AIVDM,1,1,,A,@5M:Ih1GJdo4381@,0*7C", nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	am, ok := msg.(*AssignmentMode)
	if !ok {
		t.Fatalf("got %T, want *AssignmentMode", msg)
	}
	if am.SourceMMSI != 366123456 {
		t.Errorf("SourceMMSI = %d, want 366123456", am.SourceMMSI)
	}
	if am.DestMMSI1 != 366654321 {
		t.Errorf("DestMMSI1 = %d, want 366654321", am.DestMMSI1)
	}
	if am.Offset1 != 50 {
		t.Errorf("Offset1 = %d, want 50", am.Offset1)
	}
	if am.Increment1 != 5 {
		t.Errorf("Increment1 = %d, want 5", am.Increment1)
	}
	if am.DestMMSI2 != nil {
		t.Errorf("DestMMSI2 = %v, want nil for a single-station command", am.DestMMSI2)
	}
}
