// Command sbw-convert reads a legacy SBW savings bond inventory file and
// prints it as JSON (default) or CSV.
//
// Usage:
//
//	sbw-convert [--csv] [--pretty] [--no-header] <sbw_file> [csv_file]
//
// JSON goes to stdout. With --csv or a csv_file argument, CSV is produced
// instead: to the given path, or to stdout when no path is given.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/bondkeeper/sbw-convert/inventory"
	"github.com/bondkeeper/sbw-convert/sbw"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		asCSV    = pflag.Bool("csv", false, "export as CSV instead of JSON")
		pretty   = pflag.Bool("pretty", false, "pretty-print JSON output")
		noHeader = pflag.Bool("no-header", false, "omit the CSV header row")
	)
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <sbw_file> [csv_file]\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	args := pflag.Args()
	if len(args) < 1 || len(args) > 2 {
		pflag.Usage()
		return 64
	}
	sbwPath := args[0]
	csvPath := ""
	if len(args) == 2 {
		csvPath = args[1]
	}

	logger := zap.Must(zap.NewProduction())
	defer logger.Sync()

	doc, err := sbw.DecodeFile(sbwPath)
	if err != nil {
		logger.Error("failed to decode SBW file",
			zap.String("file", sbwPath), zap.Error(err))
		return decodeExitCode(err)
	}

	if *asCSV || csvPath != "" {
		cdc := inventory.NewCSVCodec()
		cdc.IncludeHeader = !*noHeader
		if csvPath != "" {
			if err := cdc.WriteFile(doc, csvPath); err != nil {
				logger.Error("failed to write CSV file",
					zap.String("file", csvPath), zap.Error(err))
				return 1
			}
			logger.Info("CSV file saved",
				zap.String("file", csvPath), zap.Int("bonds", len(doc.Bonds)))
			return 0
		}
		out, err := cdc.Render(doc)
		if err != nil {
			logger.Error("failed to render CSV", zap.Error(err))
			return 1
		}
		fmt.Print(out)
		return 0
	}

	cdc := inventory.JSONCodec{}
	var out []byte
	if *pretty {
		out, err = cdc.EncodeIndent(doc)
	} else {
		out, err = cdc.Encode(doc)
	}
	if err != nil {
		logger.Error("failed to render JSON", zap.Error(err))
		return 1
	}
	fmt.Println(string(out))
	return 0
}

// decodeExitCode gives each decode failure kind a distinct exit code.
func decodeExitCode(err error) int {
	switch {
	case errors.Is(err, sbw.ErrCannotOpen):
		return 1
	case errors.Is(err, sbw.ErrBadMagic):
		return 2
	case errors.Is(err, sbw.ErrParse):
		return 3
	}
	return 1
}
