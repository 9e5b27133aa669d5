package gpuhash

import "testing"

func TestNewSeed(t *testing.T) {
	h := New()
	if got := h.Sum64(); got != seed {
		t.Fatalf("fresh Hasher.Sum64() = %#x, want seed %#x", got, seed)
	}
}

func TestFeedU32Deterministic(t *testing.T) {
	a := New()
	a.FeedU32(42)

	b := New()
	b.FeedU32(42)

	if a.Sum64() != b.Sum64() {
		t.Fatalf("two hashers fed the same word diverged: %#x vs %#x", a.Sum64(), b.Sum64())
	}
}

func TestFeedU32OrderSensitive(t *testing.T) {
	a := New()
	a.FeedU32(1)
	a.FeedU32(2)

	b := New()
	b.FeedU32(2)
	b.FeedU32(1)

	if a.Sum64() == b.Sum64() {
		t.Fatalf("word order did not affect hash: both produced %#x", a.Sum64())
	}
}

func TestFeedU64SplitsLowHighInOrder(t *testing.T) {
	v := uint64(0x1122334455667788)

	a := New()
	a.FeedU64(v)

	b := New()
	b.FeedU32(uint32(v))
	b.FeedU32(uint32(v >> 32))

	if a.Sum64() != b.Sum64() {
		t.Fatalf("FeedU64 did not match manual low-then-high FeedU32 calls")
	}
}

func TestFeedFloat32BitPattern(t *testing.T) {
	posZero := New()
	posZero.FeedFloat32(0.0)

	negZero := New()
	negZero.FeedFloat32(float32(-0.0) * -1 * -1) // still +0 after even negations

	// +0 and -0 compare equal numerically but must hash differently.
	trueNegZero := New()
	trueNegZero.FeedFloat32(negZeroBits())

	if posZero.Sum64() == trueNegZero.Sum64() {
		t.Fatalf("+0 and -0 produced the same hash %#x; floats must hash by bit pattern", posZero.Sum64())
	}
}

// negZeroBits returns a float32 -0.0 constructed so the Go compiler cannot
// constant-fold it into +0.0.
func negZeroBits() float32 {
	zero := float32(0)
	return -zero
}

func TestFeedStringSentinelPreventsConcatenationCollision(t *testing.T) {
	a := New()
	a.FeedString("ab")
	a.FeedString("c")

	b := New()
	b.FeedString("a")
	b.FeedString("bc")

	if a.Sum64() == b.Sum64() {
		t.Fatalf("FeedString(\"ab\")+FeedString(\"c\") collided with FeedString(\"a\")+FeedString(\"bc\")")
	}
}

func TestFeedBytesLengthPrefix(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}

	a := New()
	a.FeedBytes(data, 4)

	b := New()
	b.FeedU32(2) // len(data)/elemSize
	for _, c := range data {
		b.FeedU32(uint32(c))
	}

	if a.Sum64() != b.Sum64() {
		t.Fatalf("FeedBytes did not prefix the element count before the payload")
	}
}

func TestFeedBytesBitExact(t *testing.T) {
	code1 := make([]byte, 4001)
	for i := range code1 {
		code1[i] = byte(i)
	}
	code2 := make([]byte, len(code1))
	copy(code2, code1)
	code2[len(code2)-1]++ // flip the last byte

	a := New()
	a.FeedBytes(code1, 4)
	b := New()
	b.FeedBytes(code2, 4)

	if a.Sum64() == b.Sum64() {
		t.Fatalf("changing one trailing byte did not change the hash")
	}
}

func TestFeedBoolDistinguishesTrueFalse(t *testing.T) {
	a := New()
	a.FeedBool(true)

	b := New()
	b.FeedBool(false)

	if a.Sum64() == b.Sum64() {
		t.Fatalf("FeedBool(true) and FeedBool(false) collided")
	}
}

func TestFeedNullHandleIsZeroWord(t *testing.T) {
	a := New()
	a.FeedNullHandle()

	b := New()
	b.FeedU32(0)

	if a.Sum64() != b.Sum64() {
		t.Fatalf("FeedNullHandle did not feed a literal zero word")
	}
}

func TestFeedHandleFingerprintIsU64(t *testing.T) {
	a := New()
	a.FeedHandleFingerprint(0xDEADBEEFCAFEBABE)

	b := New()
	b.FeedU64(0xDEADBEEFCAFEBABE)

	if a.Sum64() != b.Sum64() {
		t.Fatalf("FeedHandleFingerprint did not feed the fingerprint as a 64-bit word")
	}
}
