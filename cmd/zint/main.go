// Command zint is a thin demonstration driver over the zint-go core: it
// encodes one piece of data into a Han Xin symbol and prints the
// resulting module bitmap. It is not the batch/templating CLI the real
// Zint project ships; that is explicitly out of scope here.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/zint-go/zint/internal/profile"
	"github.com/zint-go/zint/internal/trace"
	"github.com/zint-go/zint/zint"
)

func main() {
	var (
		data       = pflag.StringP("data", "d", "", "Data to encode.")
		profileArg = pflag.StringP("profile", "p", "", "Named profile from zint-profiles.yaml.")
		gs1Mode    = pflag.Bool("gs1", false, "Treat data as bracketed GS1 Application Identifiers.")
		verbose    = pflag.BoolP("verbose", "v", false, "Log the encode diagnostic and profile-loading problems.")
		help       = pflag.Bool("help", false, "Display help text.")
	)

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: zint [options]\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *help {
		pflag.Usage()
		return
	}
	if *data == "" {
		fmt.Fprintln(os.Stderr, "No data supplied, see -h for usage")
		os.Exit(1)
	}

	logger := trace.Discard()
	if *verbose {
		logger = trace.New(os.Stderr, log.DebugLevel)
	}

	sym := zint.Create(zint.SymbologyHanXin)
	if *gs1Mode {
		sym.InputMode |= zint.ModeGS1
	}

	if *profileArg != "" {
		applyProfile(sym, *profileArg, logger)
	}

	diag := sym.Encode([]byte(*data))
	logger.Stage("encode", diag)
	if diag.IsError() {
		fmt.Fprintln(os.Stderr, diag.Text())
		os.Exit(2)
	}
	if diag.Text() != "" {
		fmt.Fprintln(os.Stderr, diag.Text())
	}

	printMatrix(sym)
}

func applyProfile(sym *zint.Symbol, name string, logger *trace.Logger) {
	file, err := profile.Load()
	if err != nil {
		logger.Info("profile load failed", "error", err)
		return
	}
	p, ok := file.Find(name)
	if !ok {
		logger.Info("profile not found", "name", name)
		return
	}
	sym.Option1 = p.ECC
	sym.Option2 = p.Version
	if p.GS1Parens {
		sym.InputMode |= zint.ModeGS1Parens
	}
	if p.GS1NoCheck {
		sym.InputMode |= zint.ModeGS1NoCheck
	}
}

func printMatrix(sym *zint.Symbol) {
	for r := 0; r < sym.Rows; r++ {
		row := sym.EncodedData[r]
		for c := 0; c < sym.Width; c++ {
			if row[c/8]&(1<<uint(7-c%8)) != 0 {
				fmt.Print("##")
			} else {
				fmt.Print("  ")
			}
		}
		fmt.Println()
	}
}
