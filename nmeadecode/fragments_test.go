package nmeadecode

import "testing"

func TestAssemblerSingleFragment(t *testing.T) {
	asm := NewAssembler()
	msg, err := Parse("!AIVDM,1,1,,A,15NPOOPP00o?b=bE`UNv4?w428D;,0*24", asm)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := msg.(*VesselDynamicData); !ok {
		t.Fatalf("got %T, want *VesselDynamicData", msg)
	}
	if asm.Pending() != 0 {
		t.Fatalf("Pending() = %d, want 0", asm.Pending())
	}
}

func TestAssemblerTwoFragmentGroup(t *testing.T) {
	asm := NewAssembler()

	msg, err := Parse("!AIVDM,2,1,7,A,15NPOOPP00,0*08", asm)
	if err != nil {
		t.Fatalf("Parse fragment 1: %v", err)
	}
	if _, ok := msg.(Incomplete); !ok {
		t.Fatalf("got %T, want Incomplete", msg)
	}
	if asm.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", asm.Pending())
	}

	msg, err = Parse("!AIVDM,2,2,7,A,o?b=bE`UNv4?w428D;,0*09", asm)
	if err != nil {
		t.Fatalf("Parse fragment 2: %v", err)
	}
	if _, ok := msg.(*VesselDynamicData); !ok {
		t.Fatalf("got %T, want *VesselDynamicData", msg)
	}
	if asm.Pending() != 0 {
		t.Fatalf("Pending() = %d, want 0 after completion", asm.Pending())
	}
}

func TestAssemblerOutOfOrderFragment(t *testing.T) {
	asm := NewAssembler()

	if _, err := Parse("!AIVDM,3,1,9,A,15NPOOPP00,0*07", asm); err != nil {
		t.Fatalf("Parse fragment 1: %v", err)
	}

	_, err := Parse("!AIVDM,3,3,9,A,428D;,0*5E", asm)
	de, ok := err.(*DecodeError)
	if !ok || de.Code != ErrFragmentOutOfOrder {
		t.Fatalf("err = %v, want ErrFragmentOutOfOrder", err)
	}
	if asm.Pending() != 0 {
		t.Fatalf("Pending() = %d, want 0 after discard", asm.Pending())
	}

	// Recovery: restarting the group at index 1 succeeds.
	if _, err := Parse("!AIVDM,3,1,9,A,15NPOOPP00,0*07", asm); err != nil {
		t.Fatalf("restart fragment 1: %v", err)
	}
	if asm.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1 after restart", asm.Pending())
	}
}
