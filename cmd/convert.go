package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"time"

	"act2gpx/acttools/act"
	"act2gpx/acttools/activity"
	"act2gpx/acttools/terminal"

	"github.com/google/subcommands"
)

// DefaultExtension is appended to input files given without extension
const DefaultExtension = ".xml"

type convertCmd struct {
	noAlti       bool
	altiBaro     bool
	noExt        bool
	noPower      bool
	noTemp       bool
	intervalUnit time.Duration
	output       string
	help         bool
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "Convert a GB-580 ACT file to GPX." }
func (*convertCmd) Usage() string {
	return `convert [--noalti] [--altibaro] [--noext] [--nopower] [--notemp] filename
	Creates a file filename.gpx in GPX format from filename in GlobalSat GB-580 ACT format.
	If no extension is given, .xml is assumed.
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.noAlti, "noalti", false, "set elevation to zero")
	f.BoolVar(&c.altiBaro, "altibaro", true, "retrieve elevation from the barometric altitude")
	f.BoolVar(&c.noExt, "noext", false, "don't generate extended data (hr, temperature, cadence, power)")
	f.BoolVar(&c.noPower, "nopower", false, "don't insert power data in the extended data")
	f.BoolVar(&c.noTemp, "notemp", false, "don't insert temperature data in the extended data")
	f.DurationVar(&c.intervalUnit, "intervalunit", time.Millisecond, "unit of the trackpoint interval time (1s for firmwares writing seconds)")
	f.StringVar(&c.output, "o", "", "output file (defaults to the input file with a .gpx extension)")
	f.BoolVar(&c.help, "h", false, "print this help")
	f.BoolVar(&c.help, "help", false, "print this help")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.help {
		c.printUsage(f)
		return subcommands.ExitSuccess
	}

	if f.NArg() != 1 {
		c.printUsage(f)
		return subcommands.ExitUsageError
	}

	input, output := paths(f.Arg(0))
	if c.output != "" {
		output = c.output
	}

	o := terminal.NewOperation("Parsing file %s", input)
	doc, err := act.Read(input)
	if errors.Is(err, act.ErrFileNotFound) {
		o.Error(nil, "File %s doesn't exist", input)
		return subcommands.ExitFailure
	}
	if err != nil {
		o.Error(err, "Failed to parse %s", input)
		return subcommands.ExitFailure
	}
	o.Success("Parsed file %s", input)

	opts := activity.Options{
		NoAltitude:         c.noAlti,
		BarometricAltitude: c.altiBaro,
		NoExtensions:       c.noExt,
		NoPower:            c.noPower,
		NoTemperature:      c.noTemp,
		IntervalUnit:       c.intervalUnit,
		Progress:           terminal.Progress(os.Stderr),
	}

	o = terminal.NewOperation("Creating file %s", output)
	conv := activity.NewConverter(opts)
	data, err := conv.Convert(doc)
	if err != nil {
		o.Error(err, "Failed to convert %s", input)
		return subcommands.ExitFailure
	}

	if err := writeFile(output, data); err != nil {
		o.Error(err, "Failed to write %s", output)
		return subcommands.ExitFailure
	}
	o.Success("Created file %s (%d of %d trackpoints)", output, conv.Written(), conv.Parsed())

	return subcommands.ExitSuccess
}

func (c *convertCmd) printUsage(f *flag.FlagSet) {
	fmt.Fprint(os.Stdout, c.Usage())
	f.SetOutput(os.Stdout)
	f.PrintDefaults()
}

// paths returns the input file to read and the GPX file to create from the filename argument
func paths(filename string) (string, string) {
	ext := filepath.Ext(filename)
	root := strings.TrimSuffix(filename, ext)
	if ext == "" {
		filename += DefaultExtension
	}
	return filename, root + ".gpx"
}

// writeFile writes data to a temporary file renamed to path once complete, so that
// a failed conversion never leaves a truncated GPX behind.
func writeFile(path string, data []byte) error {
	tmp, err := ioutil.TempFile(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
