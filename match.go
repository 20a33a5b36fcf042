package deflate

// matchFinder indexes every position of an in-memory buffer by its
// leading 3-byte fingerprint and walks same-fingerprint positions newest
// first to find the longest back-reference within the 32 KiB window,
// preferring the smallest distance on a length tie. This is the same
// hash-bucket-of-recent-positions shape as getBytePairHash/findRep in
// writer.go, generalized from a 2-byte rolling hash with lookahead-by-one
// to an exact 3-byte fingerprint (a genuine equality test, not a hash
// collision risk).
type matchFinder struct {
	buf  []byte
	head map[uint32]int
	prev []int
}

func newMatchFinder(buf []byte) *matchFinder {
	return &matchFinder{
		buf:  buf,
		head: make(map[uint32]int),
		prev: make([]int, len(buf)),
	}
}

func fingerprint3(b []byte, i int) uint32 {
	return uint32(b[i]) | uint32(b[i+1])<<8 | uint32(b[i+2])<<16
}

// index registers position i's fingerprint so later positions can find it
// as a match candidate. Call it for every position in increasing order,
// once each, whether the byte at i ends up inside a literal or a match.
func (mf *matchFinder) index(i int) {
	if i+2 >= len(mf.buf) {
		return
	}
	fp := fingerprint3(mf.buf, i)
	if last, ok := mf.head[fp]; ok {
		mf.prev[i] = last
	} else {
		mf.prev[i] = -1
	}
	mf.head[fp] = i
}

// findMatch returns the best (length, distance) back-reference starting at
// i, or (0, 0) if no candidate reaches the minimum match length.
func (mf *matchFinder) findMatch(i int) (length int, distance int) {
	if i+2 >= len(mf.buf) {
		return 0, 0
	}
	fp := fingerprint3(mf.buf, i)
	r, ok := mf.head[fp]

	minPos := i - windowSize
	if minPos < 0 {
		minPos = 0
	}
	maxLen := len(mf.buf) - i
	if maxLen > maxMatchLength {
		maxLen = maxMatchLength
	}

	bestLen := 0
	bestPos := -1
	for ok && r >= minPos {
		l := 0
		for l < maxLen && mf.buf[r+l] == mf.buf[i+l] {
			l++
		}
		if l > bestLen {
			bestLen = l
			bestPos = r
		}
		if l == maxLen {
			break
		}
		next := mf.prev[r]
		ok = next != -1 && next != r
		r = next
	}

	if bestLen < minMatchLength {
		return 0, 0
	}
	return bestLen, i - bestPos
}
