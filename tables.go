package deflate

// lengthBase and lengthExtraBits give, for length code index i (symbol
// 257+i), the smallest length it represents and how many extra bits follow
// to add to it. Index 28 (symbol 285) is the single exception, per RFC
// 1951 §3.2.5: zero extra bits, base 258.
var lengthBase = [29]int{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13,
	15, 17, 19, 23, 27, 31, 35, 43, 51, 59,
	67, 83, 99, 115, 131, 163, 195, 227, 258,
}

var lengthExtraBits = [29]uint{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1,
	1, 1, 2, 2, 2, 2, 3, 3, 3, 3,
	4, 4, 4, 4, 5, 5, 5, 5, 0,
}

// distBase and distExtraBits give, for distance code index i (symbol i),
// the smallest distance it represents and how many extra bits follow.
var distBase = [30]int{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25,
	33, 49, 65, 97, 129, 193, 257, 385, 513, 769,
	1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
}

var distExtraBits = [30]uint{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3,
	4, 4, 5, 5, 6, 6, 7, 7, 8, 8,
	9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

// codeLengthOrder is the RFC 1951 permutation in which HCLEN code-length
// code lengths are transmitted in a dynamic block header.
var codeLengthOrder = [19]int{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5,
	11, 4, 12, 3, 13, 2, 14, 1, 15,
}

// fixedLitLenLengths and fixedDistLengths are the RFC 1951 §3.2.6 fixed
// Huffman code lengths for BTYPE=01 blocks.
var fixedLitLenLengths = func() [288]int {
	var l [288]int
	for i := 0; i <= 143; i++ {
		l[i] = 8
	}
	for i := 144; i <= 255; i++ {
		l[i] = 9
	}
	for i := 256; i <= 279; i++ {
		l[i] = 7
	}
	for i := 280; i <= 287; i++ {
		l[i] = 8
	}
	return l
}()

var fixedDistLengths = func() [30]int {
	var l [30]int
	for i := range l {
		l[i] = 5
	}
	return l
}()

func lengthCodeFor(length int) (sym int, extra uint32, extraBits uint) {
	for i := len(lengthBase) - 1; i >= 0; i-- {
		if length >= lengthBase[i] {
			return 257 + i, uint32(length - lengthBase[i]), lengthExtraBits[i]
		}
	}
	panic("deflate: length below minimum match length")
}

func distCodeFor(distance int) (sym int, extra uint32, extraBits uint) {
	for i := len(distBase) - 1; i >= 0; i-- {
		if distance >= distBase[i] {
			return i, uint32(distance - distBase[i]), distExtraBits[i]
		}
	}
	panic("deflate: distance below minimum of 1")
}
