// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"

	"hoco-core/fasta"
	"hoco-core/hoco"
	"hoco/internal/cli"
	"hoco/internal/cmdutil"
	"hoco/internal/pipeline"
	"hoco/internal/version"
	"hoco/internal/writers"
)

// RunContext drives one compression run: parse flags, open the files, start
// the writer, stream the pipeline, and map errors onto exit codes
// (0 ok, 2 config, 3 runtime, 130 canceled).
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("hoco")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "hoco version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	log := cmdutil.NewLogger(stderr, opts.Quiet, opts.Verbose)
	defer func() { _ = log.Sync() }()

	in, err := fasta.Open(opts.Input)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: cannot open input file: %v\n", err)
		return 3
	}
	defer func() { _ = in.Close() }()

	var out io.Writer = outw
	var outFile io.WriteCloser
	if opts.Output != "" {
		outFile, err = fasta.Create(opts.Output)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "error: cannot create output file: %v\n", err)
			return 3
		}
		out = outFile
	}

	var mapEnc writers.MapEncoder
	var mapFile io.WriteCloser
	if opts.MapOutput != "" {
		mapFile, err = os.Create(opts.MapOutput)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "error: cannot create hodeco map file: %v\n", err)
			return 3
		}
		mapEnc, err = writers.NewMapEncoder(opts.MapFormat, mapFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	}

	thr := opts.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}
	log.Debug("configured",
		zap.Int("threads", thr),
		zap.Int("buffer", opts.Buffer),
		zap.String("map-format", opts.MapFormat),
	)
	log.Info("compressing",
		zap.String("input", opts.Input),
		zap.Bool("map", opts.MapOutput != ""),
	)

	inCh, writeErr := writers.StartRecordWriter(out, mapEnc, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// A writer that died must stop the producers, or the pipeline would
	// fill the channels and stall.
	werrCh := make(chan error, 1)
	go func() {
		werr := <-writeErr
		if werr != nil {
			cancel()
		}
		werrCh <- werr
	}()

	start := time.Now()
	total, perr := cmdutil.RunStream(ctx, pipeline.Config{
		Threads: thr,
		Buffer:  opts.Buffer,
		WithMap: opts.MapOutput != "",
	}, in, func(cr hoco.CompressedRecord) error {
		select {
		case inCh <- cr:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	close(inCh)

	if werr := <-werrCh; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, perr)
		return 3
	}
	if outFile != nil {
		if e := outFile.Close(); e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
	}
	if mapFile != nil {
		if e := mapFile.Close(); e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
	}

	log.Info("done",
		zap.Int("records", total),
		zap.Duration("elapsed", time.Since(start)),
	)
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
