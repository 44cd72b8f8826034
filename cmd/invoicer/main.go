package main

import (
	"fmt"
	"os"

	"github.com/andy/invoicer/internal/cli"
)

func main() {
	err := cli.Execute()
	if cerr := cli.Close(); cerr != nil {
		fmt.Fprintf(os.Stderr, "failed to close app: %v\n", cerr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
