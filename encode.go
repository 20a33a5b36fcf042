package deflate

import (
	"bytes"
	"io"
)

// token is either a literal byte or a length/distance back-reference, the
// unit the block encoder works in after match finding.
type token struct {
	isMatch  bool
	lit      byte
	length   int
	distance int
}

// blockSpanTarget bounds how many decoded bytes a single dynamic block
// covers before starting a fresh one: roughly 32 KiB per block, about 127
// maximum-length matches, keeping each block's Huffman tables well matched
// to the data they cover.
const blockSpanTarget = 32768

var (
	fixedLitLenCodes = assignCanonicalCodes(fixedLitLenLengths[:])
	fixedDistCodes   = assignCanonicalCodes(fixedDistLengths[:])
)

// Compress reads all of r, encodes it as a sequence of raw DEFLATE blocks
// (RFC 1951, no zlib/gzip framing), and writes the result to w.
func Compress(r io.Reader, w io.Writer) error {
	buf, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	bw := newBitWriter(w)
	if len(buf) == 0 {
		writeFixedBlock(bw, nil, true)
		bw.alignByte()
		return bw.err
	}

	tokens := tokenize(buf)
	start := 0
	for start < len(tokens) {
		span := 0
		end := start
		for end < len(tokens) && span < blockSpanTarget {
			if tokens[end].isMatch {
				span += tokens[end].length
			} else {
				span++
			}
			end++
		}
		last := end == len(tokens)
		writeDynamicBlock(bw, tokens[start:end], last)
		if bw.err != nil {
			return bw.err
		}
		start = end
	}
	bw.alignByte()
	return bw.err
}

// tokenize runs greedy LZ77 over buf: at each position it takes the
// longest available back-reference (ties broken toward the smallest
// distance), or a literal byte if no candidate reaches the minimum match
// length, advancing past every byte it consumes.
func tokenize(buf []byte) []token {
	mf := newMatchFinder(buf)
	var tokens []token
	i := 0
	for i < len(buf) {
		length, distance := mf.findMatch(i)
		if length >= minMatchLength {
			tokens = append(tokens, token{isMatch: true, length: length, distance: distance})
			for end := i + length; i < end; i++ {
				mf.index(i)
			}
		} else {
			tokens = append(tokens, token{lit: buf[i]})
			mf.index(i)
			i++
		}
	}
	return tokens
}

func writeFixedBlock(bw *bitWriter, toks []token, last bool) {
	writeBlockHeader(bw, last, 1)
	writeTokens(bw, toks, fixedLitLenCodes, fixedDistCodes)
}

func writeDynamicBlock(bw *bitWriter, toks []token, last bool) {
	var litLenFreq [288]int
	var distFreq [30]int
	for _, t := range toks {
		if t.isMatch {
			sym, _, _ := lengthCodeFor(t.length)
			litLenFreq[sym]++
			dsym, _, _ := distCodeFor(t.distance)
			distFreq[dsym]++
		} else {
			litLenFreq[t.lit]++
		}
	}
	litLenFreq[256]++ // end-of-block, emitted once per block

	distUsed := false
	for _, f := range distFreq {
		if f > 0 {
			distUsed = true
			break
		}
	}
	if !distUsed {
		distFreq[0] = 1 // RFC 1951 requires at least one distance code
	}

	litLenLengths := limitedHuffmanLengths(litLenFreq[:], maxCodeBits)
	distLengths := limitedHuffmanLengths(distFreq[:], maxCodeBits)

	hlit := lastNonZero(litLenLengths) + 1
	if hlit < 257 {
		hlit = 257
	}
	hdist := lastNonZero(distLengths) + 1
	if hdist < 1 {
		hdist = 1
	}

	combined := make([]int, hlit+hdist)
	copy(combined, litLenLengths[:hlit])
	copy(combined[hlit:], distLengths[:hdist])

	clTokens := rleEncodeLengths(combined)
	var clFreq [19]int
	for _, t := range clTokens {
		clFreq[t.sym]++
	}
	clLengths := limitedHuffmanLengths(clFreq[:], 7)

	hclen := 4
	for k := 18; k >= 4; k-- {
		if clLengths[codeLengthOrder[k]] != 0 {
			hclen = k + 1
			break
		}
	}

	litLenCodes := assignCanonicalCodes(litLenLengths[:hlit])
	distCodes := assignCanonicalCodes(distLengths[:hdist])
	clCodes := assignCanonicalCodes(clLengths[:])

	writeBlockHeader(bw, last, 2)
	bw.writeBits(uint32(hlit-257), 5)
	bw.writeBits(uint32(hdist-1), 5)
	bw.writeBits(uint32(hclen-4), 4)
	for k := 0; k < hclen; k++ {
		bw.writeBits(uint32(clLengths[codeLengthOrder[k]]), 3)
	}
	for _, t := range clTokens {
		writeHuffmanCode(bw, clCodes, t.sym)
		if t.extraBits > 0 {
			bw.writeBits(t.extra, t.extraBits)
		}
	}

	writeTokens(bw, toks, litLenCodes, distCodes)
}

func writeBlockHeader(bw *bitWriter, last bool, btype uint32) {
	var bfinal uint32
	if last {
		bfinal = 1
	}
	bw.writeBits(bfinal, 1)
	bw.writeBits(btype, 2)
}

func writeTokens(bw *bitWriter, toks []token, litLenCodes, distCodes []huffCode) {
	for _, t := range toks {
		if t.isMatch {
			sym, extra, extraBits := lengthCodeFor(t.length)
			writeHuffmanCode(bw, litLenCodes, sym)
			if extraBits > 0 {
				bw.writeBits(extra, extraBits)
			}
			dsym, dextra, dextraBits := distCodeFor(t.distance)
			writeHuffmanCode(bw, distCodes, dsym)
			if dextraBits > 0 {
				bw.writeBits(dextra, dextraBits)
			}
		} else {
			writeHuffmanCode(bw, litLenCodes, int(t.lit))
		}
	}
	writeHuffmanCode(bw, litLenCodes, 256)
}

func lastNonZero(lengths []int) int {
	for i := len(lengths) - 1; i >= 0; i-- {
		if lengths[i] != 0 {
			return i
		}
	}
	return -1
}

// clToken is one emitted symbol of the code-length alphabet (0-18) used to
// transmit a dynamic block's combined literal/length and distance code
// lengths, per RFC 1951 §3.2.7.
type clToken struct {
	sym       int
	extra     uint32
	extraBits uint
}

// rleEncodeLengths run-length encodes a sequence of code lengths using
// symbols 16 (repeat previous, 3-6 times), 17 (repeat zero, 3-10 times),
// 18 (repeat zero, 11-138 times), and literal lengths 0-15 — the inverse
// of the expansion readDynamicTables performs on the decode side.
func rleEncodeLengths(lens []int) []clToken {
	var out []clToken
	n := len(lens)
	i := 0
	for i < n {
		value := lens[i]
		runLen := 1
		for i+runLen < n && lens[i+runLen] == value {
			runLen++
		}

		if value == 0 {
			rem := runLen
			for rem > 0 {
				switch {
				case rem >= 11:
					take := rem
					if take > 138 {
						take = 138
					}
					out = append(out, clToken{18, uint32(take - 11), 7})
					rem -= take
				case rem >= 3:
					take := rem
					if take > 10 {
						take = 10
					}
					out = append(out, clToken{17, uint32(take - 3), 3})
					rem -= take
				default:
					out = append(out, clToken{0, 0, 0})
					rem--
				}
			}
		} else {
			out = append(out, clToken{value, 0, 0})
			rem := runLen - 1
			for rem > 0 {
				take := rem
				if take > 6 {
					take = 6
				}
				if take < 3 {
					for ; take > 0; take-- {
						out = append(out, clToken{value, 0, 0})
					}
					rem = 0
					break
				}
				out = append(out, clToken{16, uint32(take - 3), 2})
				rem -= take
			}
		}
		i += runLen
	}
	return out
}

// Writer is a streaming io.WriteCloser over Compress: written bytes are
// buffered and compressed in full on Close, the same shape as Writer in
// writer.go.
type Writer struct {
	w    io.Writer
	data bytes.Buffer
	err  error
}

// NewWriter returns a Writer that compresses everything written to it and
// emits the result to w when Close is called.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (cw *Writer) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	return cw.data.Write(p)
}

// Close compresses everything written so far and flushes it to the
// underlying writer. It is an error to Write after Close.
func (cw *Writer) Close() error {
	if cw.err != nil {
		return cw.err
	}
	cw.err = Compress(bytes.NewReader(cw.data.Bytes()), cw.w)
	return cw.err
}
