// Command pwgen generates passwords locally, without the service.
//
//	pwgen -l 32 -charset hex -c 5
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tombowditch/passgen-serv/passgen"
)

func main() {
	length := flag.Int("l", 24, "password length")
	charset := flag.String("charset", "ascii", "charset: ascii, alnum or hex")
	count := flag.Int("c", 1, "number of passwords to generate")
	flag.Parse()

	var alphabet string
	switch *charset {
	case "ascii":
		alphabet = passgen.ASCII
	case "alnum":
		alphabet = passgen.Alphanumeric
	case "hex":
		alphabet = passgen.HexUpper
	default:
		fmt.Fprintln(os.Stderr, "unknown charset, pick one of: ascii, alnum, hex")
		os.Exit(2)
	}

	if *count < 1 {
		*count = 1
	}

	for i := 0; i < *count; i++ {
		pw, err := passgen.Generate(alphabet, *length)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(pw)
	}
}
