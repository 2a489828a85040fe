package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	inlinekv "github.com/reoring/inlinekv"
	"github.com/reoring/inlinekv/codec"
	"github.com/reoring/inlinekv/i18n"
	"github.com/reoring/inlinekv/source/yamlflow"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "inlinekv CLI\n\nUsage:\n  inlinekv [flags] [line ...]\n  echo \"name: foo, n: 1\" | inlinekv -o yaml\n\nEach argument (or each stdin line when no argument is given) is parsed on its own.\nFlags:")
}

type config struct {
	format    string
	driver    string
	dates     string
	issues    bool
	strictDup string
	maxBytes  int
	lang      string
	verbose   bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("inlinekv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var cfg config
	fs.StringVar(&cfg.format, "o", "json", "output format: json|yaml")
	fs.StringVar(&cfg.driver, "driver", "scan", "list splitter: scan|yaml")
	fs.StringVar(&cfg.dates, "dates", "plain", "date rendering: plain|rfc3339")
	fs.BoolVar(&cfg.issues, "issues", false, "report diagnostics on stderr")
	fs.StringVar(&cfg.strictDup, "dup", "ignore", "duplicate keys: ignore|warn|error")
	fs.IntVar(&cfg.maxBytes, "max-bytes", 0, "reject longer lines (0 = unlimited)")
	fs.StringVar(&cfg.lang, "lang", "en", "diagnostic language: en|ja")
	fs.BoolVar(&cfg.verbose, "v", false, "enable verbose logs")
	fs.Usage = func() {
		usage(stderr)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logf := func(format string, a ...any) {
		if cfg.verbose {
			fmt.Fprintf(stderr, format+"\n", a...)
		}
	}

	opt, err := buildOpt(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		fs.Usage()
		return 2
	}
	if cfg.format != "json" && cfg.format != "yaml" {
		fmt.Fprintf(stderr, "unknown output format %q\n", cfg.format)
		return 2
	}
	if cfg.dates != "plain" && cfg.dates != "rfc3339" {
		fmt.Fprintf(stderr, "unknown date rendering %q\n", cfg.dates)
		return 2
	}
	logf("inlinekv: driver=%s format=%s dates=%s dup=%s", opt.Splitter.Name(), cfg.format, cfg.dates, cfg.strictDup)

	var ye *yaml.Encoder
	if cfg.format == "yaml" {
		ye = yaml.NewEncoder(stdout)
		ye.SetIndent(2)
	}

	status := 0
	emit := func(n int, line string) {
		m, iss := inlinekv.ParseWithIssues(line, opt)
		if cfg.issues {
			for _, it := range iss {
				fmt.Fprintf(stderr, "line %d: %s at %s (offset %d): %s\n", n, it.Code, it.Path, it.Offset, it.Message)
			}
		}
		logf("line %d: %d key(s)", n, m.Len())
		if cfg.dates == "rfc3339" {
			var derr error
			if m, derr = datesAsRFC3339(m); derr != nil {
				fmt.Fprintf(stderr, "line %d: %v\n", n, derr)
				status = 1
				return
			}
		}
		if ye != nil {
			if err := ye.Encode(m); err != nil {
				fmt.Fprintf(stderr, "line %d: %v\n", n, err)
				status = 1
			}
			return
		}
		b, err := j.Marshal(m)
		if err != nil {
			fmt.Fprintf(stderr, "line %d: %v\n", n, err)
			status = 1
			return
		}
		if _, err := fmt.Fprintf(stdout, "%s\n", b); err != nil {
			fmt.Fprintf(stderr, "line %d: %v\n", n, err)
			status = 1
		}
	}

	if fs.NArg() > 0 {
		for i, line := range fs.Args() {
			emit(i+1, line)
		}
	} else {
		sc := bufio.NewScanner(stdin)
		n := 0
		for sc.Scan() {
			n++
			emit(n, sc.Text())
		}
		if err := sc.Err(); err != nil {
			fmt.Fprintf(stderr, "reading input: %v\n", err)
			status = 1
		}
	}
	if ye != nil {
		if err := ye.Close(); err != nil {
			fmt.Fprintf(stderr, "writing output: %v\n", err)
			status = 1
		}
	}
	return status
}

func buildOpt(cfg config) (inlinekv.ParseOpt, error) {
	opt := inlinekv.ParseOpt{MaxBytes: cfg.maxBytes, Translator: i18n.New(cfg.lang)}
	switch cfg.driver {
	case "scan":
		opt.Splitter = inlinekv.ScanSplitter()
	case "yaml":
		opt.Splitter = yamlflow.Splitter()
	default:
		return opt, fmt.Errorf("unknown driver %q", cfg.driver)
	}
	switch strings.ToLower(cfg.strictDup) {
	case "ignore":
		opt.Strictness.OnDuplicateKey = inlinekv.Ignore
	case "warn":
		opt.Strictness.OnDuplicateKey = inlinekv.Warn
	case "error":
		opt.Strictness.OnDuplicateKey = inlinekv.Error
	default:
		return opt, fmt.Errorf("unknown duplicate policy %q", cfg.strictDup)
	}
	return opt, nil
}

// datesAsRFC3339 replaces date values by their midnight UTC timestamp.
func datesAsRFC3339(m inlinekv.Map) (inlinekv.Map, error) {
	dt := codec.DateTime()
	kv := make([]any, 0, 2*m.Len())
	var err error
	m.Range(func(k string, v inlinekv.Value) bool {
		if d, ok := v.AsDate(); ok {
			var t time.Time
			if t, err = dt.Decode(context.Background(), d); err != nil {
				return false
			}
			v = inlinekv.StringValue(t.Format(time.RFC3339))
		}
		kv = append(kv, k, v)
		return true
	})
	if err != nil {
		return inlinekv.Map{}, err
	}
	return inlinekv.MapOf(kv...), nil
}
