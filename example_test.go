package deflate_test

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	deflate "github.com/farberbrodsky/c-deflate"
)

func ExampleCompress() {
	var compressed bytes.Buffer
	if err := deflate.Compress(strings.NewReader("AIAIAIAIAIAIA"), &compressed); err != nil {
		fmt.Println("compress error:", err)
		return
	}

	var decompressed bytes.Buffer
	if err := deflate.Decompress(bytes.NewReader(compressed.Bytes()), &decompressed); err != nil {
		fmt.Println("decompress error:", err)
		return
	}
	fmt.Println(decompressed.String())
	// Output: AIAIAIAIAIAIA
}

func ExampleNewWriter() {
	var buf bytes.Buffer
	w := deflate.NewWriter(&buf)
	w.Write([]byte("hello, hello, hello"))
	if err := w.Close(); err != nil {
		fmt.Println("close error:", err)
		return
	}

	var out bytes.Buffer
	if err := deflate.Decompress(bytes.NewReader(buf.Bytes()), &out); err != nil {
		fmt.Println("decompress error:", err)
		return
	}
	fmt.Println(out.String())
	// Output: hello, hello, hello
}

func ExampleNewReader() {
	var compressed bytes.Buffer
	deflate.Compress(strings.NewReader("round trip through a Reader"), &compressed)

	r, err := deflate.NewReader(&compressed)
	if err != nil {
		fmt.Println("new reader error:", err)
		return
	}
	defer r.Close()

	decoded, err := io.ReadAll(r)
	if err != nil {
		fmt.Println("read error:", err)
		return
	}
	fmt.Println(string(decoded))
	// Output: round trip through a Reader
}
