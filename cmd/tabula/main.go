package main

import (
	"fmt"
	"os"

	"github.com/kode4food/tabula/internal/cli"
)

func main() {
	if err := cli.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "tabula: %v\n", err)
		os.Exit(1)
	}
}
