package blockpair

import (
	"testing"

	"github.com/jfcooper/ddsrecover/rs"
)

func toBytes64(in []int) [64]byte {
	var out [64]byte
	for i, v := range in {
		out[i] = byte(v)
	}
	return out
}

func TestVpsRoundTrip(t *testing.T) {
	pair := toBytes64([]int{
		255, 17, 9, 194, 0, 1, 204, 32, 254, 2, 58, 255, 1, 12, 60, 34,
		2, 0, 46, 42, 0, 255, 214, 218, 3, 251, 151, 109, 250, 255, 206, 36,
		3, 2, 61, 76, 254, 3, 187, 142, 252, 0, 39, 50, 252, 1, 50, 13,
		1, 1, 147, 44, 5, 254, 194, 68, 61, 42, 195, 0, 113, 0, 45, 0,
	})

	v1, v2 := VpsForBlockPair(pair)
	got := BlockPairFromVps(v1, v2)
	if got != pair {
		t.Fatalf("round trip mismatch:\n got  %v\n want %v", got, pair)
	}
}

// This block pair carries a single byte error (offset 41, 0xd4 should be
// 0x94) in a real captured DAT subcode block pair.
func TestCorrectBlockPairSingleError(t *testing.T) {
	hp := rs.GenerateHp()
	in := toBytes64([]int{
		0x20, 0xaa, 0xaa, 0x00, 0x00, 0x24, 0x13, 0x17, 0x56, 0x94, 0x07, 0x29, 0x19, 0x39, 0x14, 0xd8,
		0x20, 0xaa, 0xaa, 0x00, 0x00, 0x24, 0x13, 0x17, 0x20, 0xaa, 0xaa, 0x00, 0x00, 0x24, 0x13, 0x17,
		0x20, 0xaa, 0xaa, 0x00, 0x00, 0x24, 0x13, 0x17, 0x56, 0xd4, 0x07, 0x29, 0x19, 0x39, 0x14, 0xd8,
		0x20, 0xaa, 0xaa, 0x00, 0x00, 0x24, 0x13, 0x17, 0xab, 0xbb, 0xe7, 0x95, 0x42, 0xda, 0x97, 0x6d,
	})
	want := []int{
		32, 170, 170, 0, 0, 36, 19, 23, 86, 148, 7, 41, 25, 57, 20, 216,
		32, 170, 170, 0, 0, 36, 19, 23, 32, 170, 170, 0, 0, 36, 19, 23,
		32, 170, 170, 0, 0, 36, 19, 23, 86, 148, 7, 41, 25, 57, 20, 216,
		32, 170, 170, 0, 0, 36, 19, 23, 171, 187, 231, 149, 66, 218, 151, 109,
	}

	got := CorrectBlockPair(in, nil, hp)
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("byte %d = %d, want %d (full: %v)", i, got[i], w, got)
		}
	}
}

// Four erased bytes, all in the odd-parity codeword, corrected with
// erasure information rather than blind error search.
func TestCorrectBlockPairFourErasures(t *testing.T) {
	hp := rs.GenerateHp()
	in := toBytes64([]int{
		255, 1, 9, 176, 0, 1, 204, 45, 254, 2, 58, 219, 1, 252, 60, 34,
		2, 0, 46, 42, 0, 255, 214, 218, 3, 251, 151, 110, 250, 255, 206, 36,
		3, 2, 61, 76, 254, 3, 187, 142, 252, 0, 39, 50, 252, 1, 50, 13,
		1, 1, 147, 44, 5, 254, 194, 68, 61, 0, 195, 0, 113, 0, 45, 0,
	})
	erasures := []int{57, 59, 61, 63}
	want := []int{
		255, 1, 9, 176, 0, 1, 204, 45, 254, 2, 58, 219, 1, 252, 60, 34,
		2, 0, 46, 42, 0, 255, 214, 218, 3, 251, 151, 110, 250, 255, 206, 36,
		3, 2, 61, 76, 254, 3, 187, 142, 252, 0, 39, 50, 252, 1, 50, 13,
		1, 1, 147, 44, 5, 254, 194, 68, 61, 42, 195, 247, 113, 218, 45, 182,
	}

	got := CorrectBlockPair(in, erasures, hp)
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("byte %d = %d, want %d", i, got[i], w)
		}
	}
}

// Nine corrupted bytes (positions 1, 3, 7, 11, 13, 27, 59, 61 and 63,
// compared with the corrected pair in TestCorrectBlockPairFourErasures),
// all in the odd-parity codeword, exceed C1's 2-error correction capacity: the odd codeword is uncorrectable and every one
// of its positions in the final output is rs.Unknown, while the
// error-free even codeword passes through untouched.
func TestCorrectBlockPairUncorrectableOddHalf(t *testing.T) {
	hp := rs.GenerateHp()
	in := toBytes64([]int{
		255, 17, 9, 194, 0, 1, 204, 32, 254, 2, 58, 255, 1, 12, 60, 34,
		2, 0, 46, 42, 0, 255, 214, 218, 3, 251, 151, 109, 250, 255, 206, 36,
		3, 2, 61, 76, 254, 3, 187, 142, 252, 0, 39, 50, 252, 1, 50, 13,
		1, 1, 147, 44, 5, 254, 194, 68, 61, 42, 195, 0, 113, 0, 45, 0,
	})

	got := CorrectBlockPair(in, nil, hp)
	for i := range got {
		if i%2 == 0 {
			if got[i] == rs.Unknown {
				t.Fatalf("byte %d unexpectedly Unknown", i)
			}
		} else {
			if got[i] != rs.Unknown {
				t.Fatalf("byte %d = %d, want rs.Unknown", i, got[i])
			}
		}
	}
}
