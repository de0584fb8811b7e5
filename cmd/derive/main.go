// Command derive prints the dashboard bundle for a code or filename as JSON.
// Useful for checking what a given upload will render without running the
// server.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/WiL-dev/econstruct/internal/flow"
	"github.com/WiL-dev/econstruct/internal/ingest"
)

func main() {
	code := flag.String("code", "", "3-digit code (normalized if shorter/longer)")
	file := flag.String("file", "", "filename to derive the code from")
	flag.Parse()

	input := *code
	if *file != "" {
		c, err := ingest.CodeFromFilename(*file)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		input = string(c)
	}

	if input == "" {
		fmt.Fprintln(os.Stderr, "either -code or -file is required")
		flag.Usage()
		os.Exit(1)
	}

	out, err := json.MarshalIndent(flow.Build(input), "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
