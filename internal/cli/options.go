// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"hoco-core/fasta"
	"hoco/internal/cliutil"
	"hoco/internal/version"
)

// Map side-channel encodings accepted by --map-format.
const (
	MapFormatCBOR  = "cbor"
	MapFormatJSONL = "jsonl"
)

// DefaultBuffer is the default capacity of the channels between the
// pipeline stages, in records.
const DefaultBuffer = 32768

// Options holds all CLI flags and arguments.
type Options struct {
	// Files
	Input     string
	Output    string // empty = stdout
	MapOutput string // empty = no hodeco map

	// Performance
	Threads int
	Buffer  int

	// Output
	MapFormat string

	// Misc
	Quiet   bool
	Verbose bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – homopolymer compression for FASTA records\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [options] <input.fa[.gz|.zst]> [<output.fa[.gz|.zst]> [<hodeco-map>]]\n", name)
		fmt.Fprintln(out, "\nWith no <output>, compressed records go to stdout. The hodeco map")
		fmt.Fprintln(out, "side channel requires an explicit <output> file.")

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))
		fmt.Fprintf(out, "      --buffer-size int       Records buffered between pipeline stages (0=unbuffered) [%s]\n", def("buffer-size"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintln(out, "      --map file              Hodeco map file (alias of the third positional)")
		fmt.Fprintf(out, "      --map-format string     Map encoding: cbor | jsonl [%s]\n", def("map-format"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Only warnings and errors [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --verbose               Debug logging [%s]\n", def("verbose"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Positionals may appear anywhere: <input> [<output> [<map>]].
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	var mapFile string

	fs.IntVar(&opt.Threads, "threads", 1, "worker threads (0 = all CPUs) [1]")
	fs.IntVar(&opt.Threads, "t", 1, "worker threads (shorthand) [1]")
	fs.IntVar(&opt.Buffer, "buffer-size", DefaultBuffer, "records buffered between pipeline stages (0 = unbuffered) [32768]")

	fs.StringVar(&mapFile, "map", "", "hodeco map file (alias of the third positional)")
	fs.StringVar(&opt.MapFormat, "map-format", MapFormatCBOR, "map encoding: cbor | jsonl [cbor]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "only warnings and errors [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "only warnings and errors (shorthand) [false]")
	fs.BoolVar(&opt.Verbose, "verbose", false, "debug logging [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	switch len(posArgs) {
	case 0:
		return opt, errors.New("an input FASTA file is required")
	case 1:
		opt.Input = posArgs[0]
	case 2:
		opt.Input, opt.Output = posArgs[0], posArgs[1]
	case 3:
		opt.Input, opt.Output, opt.MapOutput = posArgs[0], posArgs[1], posArgs[2]
	default:
		return opt, fmt.Errorf("too many positional arguments (%d), want <input> [<output> [<map>]]", len(posArgs))
	}
	if mapFile != "" {
		if opt.MapOutput != "" && opt.MapOutput != mapFile {
			return opt, errors.New("--map conflicts with the third positional argument")
		}
		opt.MapOutput = mapFile
	}
	return opt, Validate(&opt)
}

// Validate applies the CLI invariants shared by ParseArgs and tests.
func Validate(opt *Options) error {
	if !fasta.SupportedInput(opt.Input) {
		return fmt.Errorf("unsupported input %q: want .fa, .fasta, or .fna, optionally with .gz or .zst", opt.Input)
	}
	if opt.MapOutput != "" && opt.Output == "" {
		return errors.New("a hodeco map requires an explicit output file")
	}
	if opt.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if opt.Buffer < 0 {
		return errors.New("--buffer-size must be ≥ 0")
	}
	switch opt.MapFormat {
	case MapFormatCBOR, MapFormatJSONL:
	default:
		return fmt.Errorf("invalid --map-format %q", opt.MapFormat)
	}
	return nil
}
