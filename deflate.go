/*
Package deflate implements the raw DEFLATE format described in RFC 1951:
bit-level LZ77 back-references combined with canonical Huffman coding, with
no zlib or gzip framing and no checksum.

For example, to compress data into a buffer and read it back:

	var buf bytes.Buffer
	w := deflate.NewWriter(&buf)
	w.Write(data)
	w.Close()

	r, err := deflate.NewReader(&buf)
	io.Copy(os.Stdout, r)
	r.Close()

The package is deliberately narrow: no container format, no dictionary
support, no concurrency. A single compressed stream is a single sequence of
blocks, decoded or encoded synchronously by one goroutine.
*/
package deflate

const (
	maxCodeBits    = 15
	minMatchLength = 3
	maxMatchLength = 258
	windowSize     = 32768
	windowCap      = 65536
)
