package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/carcheck"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	var body []byte
	var err error
	if c.File != "" {
		body, err = os.ReadFile(c.File)
	} else {
		body, err = io.ReadAll(deps.Stdin)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: reading input: %s\n", err)
		return fmt.Errorf("reading input: %w", err)
	}

	extraction, err := deps.Extractor.Extract(body)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", carcheck.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, extraction.Text())
	return nil
}
