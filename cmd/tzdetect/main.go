// Command tzdetect looks up the timezone of an address from the command line
//
//	tzdetect -city Austin -state TX -country US
//	tzdetect -country GB -mode offset
//	tzdetect -city Paris -country FR -mode now
//	tzdetect -using province:state,country -attr province=ON -country CA
//
// -city, -state, -country and -zip fill the subject attributes of the same name;
// -attr sets any other attribute, so -using can read local names beyond those four.
// Detector settings come from TZDETECT_* env keys; flags override them.
// Exit status is 0 on a match, 1 when nothing matched or the lookup failed, 2 on usage errors
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"tzdetect/internal/core/detector"
	"tzdetect/internal/core/query"
	"tzdetect/internal/core/subject"
	"tzdetect/internal/core/version"
	"tzdetect/internal/modkit"
	"tzdetect/internal/platform/config"
	"tzdetect/internal/platform/logger"

	tzmod "tzdetect/internal/services/timezone/module"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

const (
	modeDetect = "detect"
	modeOffset = "offset"
	modeNow    = "now"
)

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tzdetect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		city    = fs.String("city", "", "city attribute")
		state   = fs.String("state", "", "state or province attribute")
		country = fs.String("country", "", "country attribute")
		zip     = fs.String("zip", "", "postal code attribute")
		field   = fs.String("field", detector.FieldTimezone, "result field to print in detect mode")
		mode    = fs.String("mode", modeDetect, "detect | offset | now")
		raise   = fs.Bool("raise", false, "fail on lookup errors instead of reporting no match")
		baseURL = fs.String("base-url", "", "lookup endpoint (default TZDETECT_BASE_URL)")
		using   = fs.String("using", "", "csv of attributes to send; local:param renames")
		verbose = fs.Bool("v", false, "log lookups to stderr")
		showVer = fs.Bool("version", false, "print version and exit")
		attrs   = subject.Map{}
	)
	fs.Func("attr", "extra subject attribute as name=value; repeatable", func(s string) error {
		name, value, ok := strings.Cut(s, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return fmt.Errorf("want name=value, got %q", s)
		}
		attrs[name] = strings.TrimSpace(value)
		return nil
	})
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *showVer {
		fmt.Fprintln(stdout, version.Info("tzdetect"))
		return 0
	}
	switch *mode {
	case modeDetect, modeOffset, modeNow:
	default:
		fmt.Fprintf(stderr, "tzdetect: unknown -mode %q\n", *mode)
		return 2
	}

	lo := logger.FromEnv()
	lo.Writer = stderr
	if !*verbose {
		lo.Level = "warn"
	}
	logger.Init(lo)

	over := tzmod.Options{Detector: detector.Options{
		BaseURL:     *baseURL,
		RaiseErrors: *raise,
		Log:         *verbose,
	}}
	if *using != "" {
		over.Detector.Using = query.Parse(strings.Split(*using, ","))
	}
	m, err := tzmod.New(modkit.Deps{Cfg: config.New()}, over)
	if err != nil {
		fmt.Fprintf(stderr, "tzdetect: %v\n", err)
		return 2
	}

	subj := subject.Map{"city": *city, "state": *state, "country": *country, "zip": *zip}
	for k, v := range attrs {
		subj[k] = v
	}
	var (
		out string
		ok  bool
	)
	switch *mode {
	case modeOffset:
		out, ok, err = m.Integrator().UTCOffset(ctx, subj)
	case modeNow:
		var now time.Time
		now, ok, err = m.Integrator().CurrentTime(ctx, subj)
		out = now.Format(time.RFC3339)
	default:
		out, ok, err = m.Detector().Detect(ctx, subj, *field)
	}
	if err != nil {
		fmt.Fprintf(stderr, "tzdetect: %v\n", err)
		return 1
	}
	if !ok {
		fmt.Fprintln(stderr, "tzdetect: no match")
		return 1
	}
	fmt.Fprintln(stdout, out)
	return 0
}
