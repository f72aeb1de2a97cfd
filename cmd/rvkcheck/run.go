package main

import (
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/cpu"

	"github.com/ericlagergren/rvk"
	"github.com/ericlagergren/rvk/internal/insn"
	"github.com/ericlagergren/rvk/internal/kat"
)

type config struct {
	list    bool
	xlen    int
	names   []string
	noColor bool
}

// ErrChecksFailed is returned when at least one known-answer
// check fails.
var ErrChecksFailed = errors.Errorf("one or more checks failed")

func run(cfg config, w io.Writer, log *logrus.Entry) error {
	color.NoColor = color.NoColor || cfg.noColor

	if cfg.list {
		return listInsns(w, cfg.xlen)
	}

	report(w)

	checks, err := selectChecks(cfg.names)
	if err != nil {
		return err
	}
	return runChecks(w, log, checks)
}

func report(w io.Writer) {
	fmt.Fprintf(w, "backend: %s\n", rvk.Selected)
	fmt.Fprintf(w, "arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	for _, f := range features() {
		fmt.Fprintf(w, "cpu:     %-10s %v\n", f.name, f.ok)
	}
}

type feature struct {
	name string
	ok   bool
}

// features lists the host CPU features that matter to the
// selected backend.
func features() []feature {
	switch runtime.GOARCH {
	case "amd64":
		return []feature{
			{"aes", cpu.X86.HasAES},
			{"pclmulqdq", cpu.X86.HasPCLMULQDQ},
			{"sse4.1", cpu.X86.HasSSE41},
		}
	case "arm64":
		return []feature{
			{"aes", cpu.ARM64.HasAES},
			{"pmull", cpu.ARM64.HasPMULL},
			{"sha2", cpu.ARM64.HasSHA2},
			{"sha512", cpu.ARM64.HasSHA512},
			{"sm3", cpu.ARM64.HasSM3},
			{"sm4", cpu.ARM64.HasSM4},
		}
	default:
		return nil
	}
}

func selectChecks(names []string) ([]kat.Check, error) {
	if len(names) == 0 {
		return kat.Checks(), nil
	}
	var checks []kat.Check
	for _, name := range names {
		c, ok := kat.Lookup(name)
		if !ok {
			return nil, errors.Errorf("unknown check %q", name)
		}
		checks = append(checks, c)
	}
	return checks, nil
}

func runChecks(w io.Writer, log *logrus.Entry, checks []kat.Check) error {
	pass := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed).SprintFunc()

	failed := 0
	for _, c := range checks {
		log.WithField("check", c.Name).Debug("running")
		if err := c.Run(); err != nil {
			failed++
			log.WithField("check", c.Name).Error(err)
			fmt.Fprintf(w, "%s %s (%s)\n", fail("FAIL"), c.Name, c.Source)
			continue
		}
		fmt.Fprintf(w, "%s %s (%s)\n", pass("PASS"), c.Name, c.Source)
	}
	log.WithFields(logrus.Fields{
		"total":  len(checks),
		"failed": failed,
	}).Info("done")
	if failed > 0 {
		return ErrChecksFailed
	}
	return nil
}

func listInsns(w io.Writer, xlen int) error {
	if xlen != 32 && xlen != 64 {
		return errors.Errorf("invalid xlen %d", xlen)
	}
	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	fmt.Fprintln(tw, "MNEMONIC\tEXT\tENCODING\tEXAMPLE")
	for _, op := range insn.Ops() {
		if !op.Valid(xlen) {
			continue
		}
		in := insn.Inst{Op: op, Rd: insn.A0, Rs1: insn.A0, Rs2: insn.A1}
		word, err := insn.Encode(xlen, in)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\t0x%08x\t%s\n", op, op.Extension(), word, in)
	}
	return tw.Flush()
}
