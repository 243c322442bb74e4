package main

import (
	"fmt"
	"io"

	"vhdlparser/internal/driver"
)

func printTimings(out io.Writer, results []*driver.FileResult, format string) error {
	if format == "json" {
		data, err := driver.TimingsJSON(results)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%s\n", data)
		return err
	}
	for _, r := range results {
		label := r.Path
		if r.Cached {
			label += " (cached)"
		}
		if _, err := fmt.Fprintf(out, "%s\n%s", label, r.Timing.Summary()); err != nil {
			return err
		}
	}
	return nil
}
