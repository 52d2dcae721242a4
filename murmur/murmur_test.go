package murmur

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/spaolacci/murmur3"
)

var vectors = []struct {
	data string
	seed uint64
	h1   uint64
	h2   uint64
}{
	{"", 0, 0x0000000000000000, 0x0000000000000000},
	{"", 1, 0x4610abe56eff5cb5, 0x51622daa78f83583},
	{"", 0x2a, 0xf02aa77dfa1b8523, 0xd1016610da11cbb9},
	{"a", 0, 0x85555565f6597889, 0xe6b53a48510e895a},
	{"ab", 0, 0x938b11ea16ed1b2e, 0xe65ea7019b52d4ad},
	{"hello", 0, 0xcbd8a7b341bd9b02, 0x5b1e906a48ae1d19},
	{"hello", 123, 0x29de5fd20a9dc50b, 0x0e7a2261af65ed82},
	{"hello, world", 0, 0x342fac623a5ebc8e, 0x4cdcbc079642414d},
	{"abcdefgh", 0, 0xcc8a0ab037ef8c02, 0x48890d60eb6940a1},
	{"abcdefghi", 0, 0x0547c0cff13c7964, 0x79b53df5b741e033},
	{"abcdefghijklmnop", 0, 0xc4ca3ca3224cb723, 0x4333d695b331eb1a},
	{"abcdefghijklmnopqrstuvwxyz", 0, 0x749c9d7e516f4aa9, 0xe9ad9c89b6a7d529},
	{"The quick brown fox jumps over the lazy dog", 0, 0xe34bbc7bbc071b6c, 0x7a433ca9c49a9347},
	{"The quick brown fox jumps over the lazy dog", 0x9747b28c, 0x738a7f3bd2633121, 0xf94573727ec016e5},
}

func TestSum128SeedVectors(t *testing.T) {
	for _, v := range vectors {
		h1, h2 := Sum128Seed([]byte(v.data), v.seed)
		if h1 != v.h1 || h2 != v.h2 {
			t.Errorf("Sum128Seed(%q, %#x) = (%#016x, %#016x), want (%#016x, %#016x)",
				v.data, v.seed, h1, h2, v.h1, v.h2)
		}
	}
}

func TestSum128MatchesSeedZero(t *testing.T) {
	data := []byte("hello, world")
	h1, h2 := Sum128(data)
	s1, s2 := Sum128Seed(data, 0)
	if h1 != s1 || h2 != s2 {
		t.Errorf("Sum128 = (%#x, %#x), Sum128Seed(_, 0) = (%#x, %#x)", h1, h2, s1, s2)
	}
}

// High tail bytes must be accumulated unsigned; a sign-extending
// implementation diverges on any input whose tail contains bytes >= 0x80.
func TestHighTailBytes(t *testing.T) {
	data := bytes.Repeat([]byte{0xff}, 15)
	h1, h2 := Sum128(data)
	if h1 != 0x2c9d1a48cb13ee54 || h2 != 0x080e9aebb4723701 {
		t.Errorf("Sum128(0xff x15) = (%#016x, %#016x), want (0x2c9d1a48cb13ee54, 0x080e9aebb4723701)", h1, h2)
	}

	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	h1, h2 = Sum128(all)
	if h1 != 0x1c99c313dc6f12b9 || h2 != 0x70d6077fab34cc1e {
		t.Errorf("Sum128(0x00..0xff) = (%#016x, %#016x), want (0x1c99c313dc6f12b9, 0x70d6077fab34cc1e)", h1, h2)
	}
}

func TestDeterminism(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		data := make([]byte, rnd.Intn(100))
		rnd.Read(data)
		seed := rnd.Uint64()
		a1, a2 := Sum128Seed(data, seed)
		b1, b2 := Sum128Seed(data, seed)
		if a1 != b1 || a2 != b2 {
			t.Fatalf("Sum128Seed not deterministic for len=%d seed=%#x", len(data), seed)
		}
	}
}

// Cross-check against an independent murmur3 implementation. Its seed
// parameter is 32 bits wide, so the comparison is restricted to seeds that
// fit; both implementations initialize h1 and h2 from the same seed value.
func TestAgainstReferenceImplementation(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		data := make([]byte, rnd.Intn(128))
		rnd.Read(data)
		seed := uint32(rnd.Int63())

		ref := murmur3.New128WithSeed(seed)
		ref.Write(data)
		w1, w2 := ref.Sum128()

		h1, h2 := Sum128Seed(data, uint64(seed))
		if h1 != w1 || h2 != w2 {
			t.Fatalf("disagreement with reference: len=%d seed=%#x got (%#x, %#x) want (%#x, %#x)",
				len(data), seed, h1, h2, w1, w2)
		}
	}
}

func BenchmarkSum128(b *testing.B) {
	data := make([]byte, 1024)
	rand.New(rand.NewSource(7)).Read(data)
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		Sum128(data)
	}
}
