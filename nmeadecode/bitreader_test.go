package nmeadecode

import "testing"

func TestBitVecPickUint(t *testing.T) {
	bv := newBitVec(8)
	// 00000101 = 5
	bv.setBit(5, true)
	bv.setBit(7, true)
	if got := bv.pickUint(0, 8); got != 5 {
		t.Fatalf("pickUint = %d, want 5", got)
	}
}

func TestBitVecPickIntSigned(t *testing.T) {
	bv := newBitVec(8)
	for i := 0; i < 8; i++ {
		bv.setBit(i, true) // 11111111 = -1 in two's complement
	}
	if got := bv.pickInt(0, 8); got != -1 {
		t.Fatalf("pickInt = %d, want -1", got)
	}
}

func TestBitVecPickIntPositive(t *testing.T) {
	bv := newBitVec(8)
	bv.setBit(4, true) // 00001000 = 8
	if got := bv.pickInt(0, 8); got != 8 {
		t.Fatalf("pickInt = %d, want 8", got)
	}
}

func TestBitVecOutOfRangeReadsZero(t *testing.T) {
	bv := newBitVec(4)
	if got := bv.pickUint(0, 8); got != 0 {
		t.Fatalf("pickUint past end = %d, want 0", got)
	}
}

func TestBitVecPickString(t *testing.T) {
	bv := newBitVec(18)
	// 'A' in the 6-bit packed ASCII text alphabet is value 1 -> 000001
	// build "AB@" -> A=1,B=2,@=0, trimmed trailing '@'
	vals := []uint64{1, 2, 0}
	for i, v := range vals {
		for b := 0; b < 6; b++ {
			if v&(1<<(5-b)) != 0 {
				bv.setBit(i*6+b, true)
			}
		}
	}
	if got := bv.pickString(0, 3); got != "AB" {
		t.Fatalf("pickString = %q, want %q", got, "AB")
	}
}

func TestBitVecSufficientBits(t *testing.T) {
	bv := newBitVec(10)
	if !bv.sufficientBits(10) {
		t.Error("sufficientBits(10) = false, want true")
	}
	if bv.sufficientBits(11) {
		t.Error("sufficientBits(11) = true, want false")
	}
}
