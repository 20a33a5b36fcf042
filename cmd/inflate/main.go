// Command inflate decompresses a raw DEFLATE stream into a file.
package main

import (
	"bytes"
	"flag"
	"io/ioutil"
	"log"

	"github.com/farberbrodsky/c-deflate"
)

func main() {
	inputFile := flag.String("i", "", "input file path")
	outputFile := flag.String("o", "", "output file path")
	flag.Parse()

	if *inputFile == "" || *outputFile == "" {
		log.Fatal("usage: inflate -i <input> -o <output>")
	}

	data, err := ioutil.ReadFile(*inputFile)
	if err != nil {
		log.Fatal(err)
	}

	var out bytes.Buffer
	if err := deflate.Decompress(bytes.NewReader(data), &out); err != nil {
		log.Fatal(err)
	}

	if err := ioutil.WriteFile(*outputFile, out.Bytes(), 0644); err != nil {
		log.Fatal(err)
	}
}
