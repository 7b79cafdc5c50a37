// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Command lambda is an interpreter for a small, statically typed lambda calculus.
//
// With no file arguments, lambda runs an interactive session when stdin is a terminal
// and otherwise evaluates stdin line by line. Each file argument is evaluated line by line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sanity-io/litter"

	"github.com/wdamron/lambda/ast"
	"github.com/wdamron/lambda/internal/config"
	"github.com/wdamron/lambda/interp"
	"github.com/wdamron/lambda/parser"
)

const appName = "lambda"

type options struct {
	cfg  config.Config
	dump bool
	expr string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, files, err := parseFlags(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 2
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: opts.cfg.Level()}))
	slog.SetDefault(logger)

	ip := interp.New()
	ip.Infer = opts.cfg.Infer
	ip.MaxDepth = opts.cfg.MaxDepth
	ip.Logger = logger

	switch {
	case opts.expr != "":
		if !execUnit(ip, opts, opts.expr, stdout, stderr, "") {
			return 1
		}
		return 0
	case len(files) > 0:
		status := 0
		for _, path := range files {
			f, err := os.Open(path)
			if err != nil {
				fmt.Fprintf(stderr, "%s: %v\n", appName, err)
				status = 1
				continue
			}
			if !runBatch(ip, opts, path, f, stdout, stderr) {
				status = 1
			}
			f.Close()
		}
		return status
	case isTerminal(stdin):
		return runREPL(ip, opts, stdout)
	}
	if !runBatch(ip, opts, "<stdin>", stdin, stdout, stderr) {
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, []string, error) {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "path to a YAML config file (default: lambda.yaml, if present)")
		infer      = fs.Bool("infer", true, "type-check each unit before evaluation")
		maxDepth   = fs.Int("max-depth", 0, "maximum nesting depth of evaluation")
		history    = fs.String("history", "", "REPL history file, relative to the home directory")
		prompt     = fs.String("prompt", "", "REPL prompt")
		logLevel   = fs.String("log-level", "", "log level: debug, info, warn or error")
		dump       = fs.Bool("dump", false, "print the parsed tree of each unit")
		expr       = fs.String("e", "", "evaluate a single expression")
	)
	if err := fs.Parse(args); err != nil {
		return options{}, nil, err
	}

	var cfg config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.Load(*configPath, false)
	} else {
		cfg, err = config.Load("lambda.yaml", true)
	}
	if err != nil {
		return options{}, nil, err
	}

	// flags override the config file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "infer":
			cfg.Infer = *infer
		case "max-depth":
			cfg.MaxDepth = *maxDepth
		case "history":
			cfg.History = *history
		case "prompt":
			cfg.Prompt = *prompt
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		return options{}, nil, err
	}
	return options{cfg: cfg, dump: *dump, expr: *expr}, fs.Args(), nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// runBatch evaluates r line by line. A line which ends within an incomplete expression is
// joined with the following lines. Errors are reported and evaluation continues with the next unit.
func runBatch(ip *interp.Interpreter, opts options, name string, r io.Reader, stdout, stderr io.Writer) (ok bool) {
	ok = true
	scanner := bufio.NewScanner(r)
	var (
		pending   strings.Builder
		startLine int
		line      int
	)
	for scanner.Scan() {
		line++
		if pending.Len() == 0 {
			startLine = line
		} else {
			pending.WriteByte('\n')
		}
		pending.WriteString(scanner.Text())
		src := pending.String()
		if _, err := parser.Parse(src); parser.IsIncomplete(err) {
			continue
		}
		pending.Reset()
		if !execUnit(ip, opts, src, stdout, stderr, fmt.Sprintf("%s:%d: ", name, startLine)) {
			ok = false
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(stderr, "%s: %s: %v\n", appName, name, err)
		return false
	}
	if pending.Len() > 0 {
		if !execUnit(ip, opts, pending.String(), stdout, stderr, fmt.Sprintf("%s:%d: ", name, startLine)) {
			ok = false
		}
	}
	return ok
}

// execUnit runs a single unit and reports its result. Blank units are skipped.
func execUnit(ip *interp.Interpreter, opts options, src string, stdout, stderr io.Writer, prefix string) bool {
	if opts.dump {
		if expr, err := parser.Parse(src); err == nil {
			fmt.Fprintln(stdout, dumpExpr(expr))
		}
	}
	res, err := ip.Exec(src)
	if err == parser.ErrEmpty {
		return true
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s%v\n", prefix, err)
		return false
	}
	fmt.Fprintln(stdout, res)
	return true
}

func dumpExpr(expr ast.Expr) string {
	return litter.Options{HidePrivateFields: true, StripPackageNames: false}.Sdump(expr)
}
