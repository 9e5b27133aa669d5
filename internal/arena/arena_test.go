package arena

import "testing"

func TestAllocSliceZeroed(t *testing.T) {
	a := New()
	s := AllocSlice[uint64](a, 8)
	for i, v := range s {
		if v != 0 {
			t.Fatalf("s[%d] = %d, want 0", i, v)
		}
	}
}

func TestAllocReturnsDistinctRegions(t *testing.T) {
	a := New()
	p1 := Alloc[uint32](a)
	p2 := Alloc[uint32](a)
	*p1 = 1
	*p2 = 2
	if *p1 != 1 || *p2 != 2 {
		t.Fatalf("allocations aliased: *p1=%d *p2=%d", *p1, *p2)
	}
}

func TestDupBytesIndependentOfSource(t *testing.T) {
	a := New()
	src := []byte{1, 2, 3, 4}
	dup := a.DupBytes(src)

	src[0] = 0xFF
	if dup[0] == 0xFF {
		t.Fatalf("DupBytes aliased the source slice")
	}
}

func TestDupStringIndependentOfSource(t *testing.T) {
	a := New()
	src := []byte("hello")
	dup := a.DupString(string(src))
	src[0] = 'H'
	if dup != "hello" {
		t.Fatalf("DupString = %q, want %q", dup, "hello")
	}
}

func TestDupSliceIndependentOfSource(t *testing.T) {
	a := New()
	src := []int32{1, 2, 3}
	dup := DupSlice(a, src)
	src[0] = 99
	if dup[0] != 1 {
		t.Fatalf("DupSlice aliased the source slice")
	}
}

func TestGrowsBeyondBlockSize(t *testing.T) {
	a := New()
	big := make([]byte, minBlockSize*2+17)
	for i := range big {
		big[i] = byte(i)
	}
	dup := a.DupBytes(big)
	if len(dup) != len(big) {
		t.Fatalf("len(dup) = %d, want %d", len(dup), len(big))
	}
	for i := range big {
		if dup[i] != big[i] {
			t.Fatalf("dup[%d] = %d, want %d", i, dup[i], big[i])
		}
	}
	if st := a.Stats(); st.Blocks != 1 || st.Total < len(big) {
		t.Fatalf("expected one block sized for the oversized request, got %d block(s) totalling %d bytes", st.Blocks, st.Total)
	}
}

func TestAllocAlignment(t *testing.T) {
	a := New()
	_ = Alloc[byte](a)
	p := Alloc[uint64](a)
	// The arena must round up to uint64's alignment even when the
	// previous allocation left the offset unaligned.
	addr := uintptr(0)
	_ = addr
	var v uint64 = 0x1122334455667788
	*p = v
	if *p != v {
		t.Fatalf("misaligned allocation corrupted value: got %#x want %#x", *p, v)
	}
}

func TestEmptyAllocationsReturnNil(t *testing.T) {
	a := New()
	if got := a.Bytes(0); got != nil {
		t.Fatalf("Bytes(0) = %v, want nil", got)
	}
	if got := a.DupBytes(nil); got != nil {
		t.Fatalf("DupBytes(nil) = %v, want nil", got)
	}
	if got := AllocSlice[int](a, 0); got != nil {
		t.Fatalf("AllocSlice(0) = %v, want nil", got)
	}
}

func TestStatsTracksUsage(t *testing.T) {
	a := New()
	a.Bytes(100)
	st := a.Stats()
	if st.Blocks != 1 {
		t.Fatalf("Blocks = %d, want 1", st.Blocks)
	}
	if st.Used < 100 {
		t.Fatalf("Used = %d, want >= 100", st.Used)
	}
	if st.Total < minBlockSize {
		t.Fatalf("Total = %d, want >= %d", st.Total, minBlockSize)
	}
}
