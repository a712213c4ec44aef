package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/op/go-logging"

	"github.com/masonwr/huffman-encoding/internal/logger"
)

var log = logging.MustGetLogger("huff")

const progName = "huff"
const usageMessageRaw = `
Usage: huff [OPTIONS] COMMAND FILE...

Commands:
  encode FILE...
	Write FILE$ext for every FILE.
  decode FILE$ext...
	Restore every FILE$ext to FILE. Inputs without the
	$ext suffix are restored to FILE.out.
  stats FILE...
	Report code lengths, entropy and container size for
	every FILE, next to a zstd baseline.

Options:
  --jobs N, -j N
	Process up to N files at once (default: number of CPUs).
  --force, -f
	Overwrite existing output files.
  --debug, -d
	Log codec internals to standard error.
`

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 64
)

func usageMessage() string {
	template := strings.TrimLeft(usageMessageRaw, "\n")
	return strings.NewReplacer("$ext", containerExt).Replace(template)
}

type options struct {
	jobs  int
	force bool
	debug bool
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet(progName, flag.ContinueOnError)
	flags.Usage = func() {}
	flags.SetOutput(io.Discard)

	// Usage strings are hardcoded above.

	var opts options
	flags.IntVar(&opts.jobs, "jobs", runtime.NumCPU(), "")
	flags.IntVar(&opts.jobs, "j", runtime.NumCPU(), "")
	flags.BoolVar(&opts.force, "force", false, "")
	flags.BoolVar(&opts.force, "f", false, "")
	flags.BoolVar(&opts.debug, "debug", false, "")
	flags.BoolVar(&opts.debug, "d", false, "")

	usageErrorf := func(detailFmt string, detailArgs ...interface{}) int {
		detail := fmt.Sprintf(detailFmt, detailArgs...)
		fmt.Fprintf(stderr, "%s: %s\n%s", progName, detail, usageMessage())
		return exitUsage
	}

	argErr := flags.Parse(args)
	if argErr == flag.ErrHelp {
		io.WriteString(stdout, usageMessage())
		return exitOK
	} else if argErr != nil {
		return usageErrorf("%s", argErr.Error())
	}
	if opts.jobs < 1 {
		return usageErrorf("--jobs must be at least 1, got %d", opts.jobs)
	}
	if opts.debug {
		logging.SetLevel(logging.DEBUG, "")
	}

	if flags.NArg() < 1 {
		return usageErrorf("not enough arguments; expected COMMAND")
	}
	command, files := flags.Arg(0), flags.Args()[1:]
	if len(files) == 0 {
		return usageErrorf("not enough arguments; expected FILE")
	}

	var err error
	switch command {
	default:
		return usageErrorf("bad command \"%s\"", command)
	case "encode":
		err = encodeFiles(files, opts)
	case "decode":
		err = decodeFiles(files, opts)
	case "stats":
		err = statsFiles(files, opts, stdout)
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", progName, err.Error())
		return exitError
	}
	return exitOK
}

func main() {
	logger.Start(progName)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
