// Command rvkcheck reports which rvk backend was compiled in
// and runs the known-answer checks against it.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-errors/errors"
	"github.com/integrii/flaggy"
	"github.com/sirupsen/logrus"
	"github.com/xyproto/env/v2"

	"github.com/ericlagergren/rvk"
)

var (
	version = "unversioned"
	commit  string

	listFlag    = false
	xlenFlag    = 64
	checkNames  []string
	noColorFlag = false
)

func main() {
	info := fmt.Sprintf(
		"%s\nCommit: %s\nBackend: %s\nOS: %s\nArch: %s",
		version,
		commit,
		rvk.Selected,
		runtime.GOOS,
		runtime.GOARCH,
	)

	flaggy.SetName("rvkcheck")
	flaggy.SetDescription("Self-check for the RISC-V scalar cryptography instructions")

	flaggy.Bool(&listFlag, "l", "list", "List the instructions and their encodings")
	flaggy.Int(&xlenFlag, "x", "xlen", "XLEN used by -list (32 or 64)")
	flaggy.StringSlice(&checkNames, "r", "run", "Run only the named checks")
	flaggy.Bool(&noColorFlag, "n", "no-color", "Disable colored output")
	flaggy.SetVersion(info)

	flaggy.Parse()

	log := newLogger(env.Str("RVKCHECK_LOG_LEVEL", "info"))

	cfg := config{
		list:    listFlag,
		xlen:    xlenFlag,
		names:   checkNames,
		noColor: noColorFlag || env.Bool("NO_COLOR"),
	}
	if err := run(cfg, os.Stdout, log); err != nil {
		newErr := errors.Wrap(err, 0)
		log.Debug(newErr.ErrorStack())
		log.Fatal(err.Error())
	}
}

func newLogger(level string) *logrus.Entry {
	log := logrus.New()
	log.Out = os.Stderr
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log.WithFields(logrus.Fields{
		"backend": rvk.Selected.String(),
		"arch":    runtime.GOARCH,
	})
}
