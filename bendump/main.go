package main

import (
	"fmt"
	"io"
	"os"

	"bencode"
)

func main() {

	var data []byte
	var err error

	if len(os.Args) > 1 {
		data, err = os.ReadFile(os.Args[1])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "bendump:", err)
		os.Exit(1)
	}

	val, rest, err := bencode.Decode(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bendump:", err)
		os.Exit(1)
	}

	out, err := bencode.ToJSON(val)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bendump:", err)
		os.Exit(1)
	}

	fmt.Println(string(out))

	if len(rest) > 0 {
		fmt.Fprintf(os.Stderr, "bendump: warning: %d trailing bytes after value\n", len(rest))
	}
}
