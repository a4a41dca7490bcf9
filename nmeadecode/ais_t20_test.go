package nmeadecode

import "testing"

func TestDecodeType20DataLinkManagement(t *testing.T) {
	msg, err := Parse("!AIVDM,1,1,,A,D5M:Ih06AF0`<QT1@,2*1A", nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	dlm, ok := msg.(*DataLinkManagement)
	if !ok {
		t.Fatalf("got %T, want *DataLinkManagement", msg)
	}
	if dlm.SourceMMSI != 366123456 {
		t.Errorf("SourceMMSI = %d, want 366123456", dlm.SourceMMSI)
	}
	if len(dlm.Blocks) != 2 {
		t.Fatalf("len(Blocks) = %d, want 2", len(dlm.Blocks))
	}
	want := []DataLinkManagementBlock{
		{Offset: 100, Slots: 5, Timeout: 3, Increment: 10},
		{Offset: 200, Slots: 6, Timeout: 2, Increment: 20},
	}
	for i, b := range want {
		got := dlm.Blocks[i]
		if got != b {
			t.Errorf("Blocks[%d] = %+v, want %+v", i, got, b)
		}
	}
}
