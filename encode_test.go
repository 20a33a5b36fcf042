package deflate

import (
	"bytes"
	"testing"
)

func TestCompressEmptyInput(t *testing.T) {
	// Scenario: empty input compresses to a single final fixed-Huffman
	// block holding nothing but the end-of-block code, which canonical
	// construction assigns the all-zero 7-bit code: BFINAL=1, BTYPE=01,
	// then seven zero bits, padded out to a whole byte.
	var buf bytes.Buffer
	if err := Compress(bytes.NewReader(nil), &buf); err != nil {
		t.Fatalf("Compress: %v", err)
	}
	want := []byte{0x03, 0x00}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got %v, want %v", buf.Bytes(), want)
	}
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"a",
		"aaaa",
		"AIAIAIAIAIAIA",
		"the quick brown fox jumps over the lazy dog",
		"abcabcabcabcabcabcabcabcabcabcabcabcabcabc",
	}
	for _, text := range cases {
		var compressed bytes.Buffer
		if err := Compress(bytes.NewReader([]byte(text)), &compressed); err != nil {
			t.Fatalf("Compress(%q): %v", text, err)
		}
		var decompressed bytes.Buffer
		if err := Decompress(bytes.NewReader(compressed.Bytes()), &decompressed); err != nil {
			t.Fatalf("Decompress(%q): %v", text, err)
		}
		if decompressed.String() != text {
			t.Errorf("round trip of %q produced %q", text, decompressed.String())
		}
	}
}

func TestCompressHighlyRepetitiveInputIsSmall(t *testing.T) {
	input := bytes.Repeat([]byte{0}, 65536)
	var compressed bytes.Buffer
	if err := Compress(bytes.NewReader(input), &compressed); err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if compressed.Len() >= len(input)/4 {
		t.Errorf("compressed %d zero bytes down to %d, expected much stronger compression", len(input), compressed.Len())
	}

	var decompressed bytes.Buffer
	if err := Decompress(bytes.NewReader(compressed.Bytes()), &decompressed); err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(decompressed.Bytes(), input) {
		t.Error("round trip of 65536 zero bytes did not reproduce the input")
	}
}

func TestDecompressStoredBlockIsIdempotent(t *testing.T) {
	// Decompressing an already-valid stored block should reproduce its
	// payload exactly: stored blocks carry no redundancy to remove.
	payload := []byte("no compression here")
	input := []byte{0x01, byte(len(payload)), 0x00, byte(^uint16(len(payload))), byte(^uint16(len(payload)) >> 8)}
	input = append(input, payload...)

	var out bytes.Buffer
	if err := Decompress(bytes.NewReader(input), &out); err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(out.Bytes(), payload) {
		t.Errorf("got %q, want %q", out.Bytes(), payload)
	}
}

func TestRLEEncodeLengthsRoundTrip(t *testing.T) {
	lens := []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 3, 3, 3, 3, 0, 0, 0, 7}
	tokens := rleEncodeLengths(lens)

	got := make([]int, 0, len(lens))
	for _, tok := range tokens {
		switch tok.sym {
		case 16:
			count := 3 + int(tok.extra)
			prev := got[len(got)-1]
			for i := 0; i < count; i++ {
				got = append(got, prev)
			}
		case 17:
			count := 3 + int(tok.extra)
			for i := 0; i < count; i++ {
				got = append(got, 0)
			}
		case 18:
			count := 11 + int(tok.extra)
			for i := 0; i < count; i++ {
				got = append(got, 0)
			}
		default:
			got = append(got, tok.sym)
		}
	}

	if len(got) != len(lens) {
		t.Fatalf("expanded to %d entries, want %d", len(got), len(lens))
	}
	for i := range lens {
		if got[i] != lens[i] {
			t.Errorf("index %d: got %d, want %d", i, got[i], lens[i])
		}
	}
}
