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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/wdamron/lambda/ast"
	"github.com/wdamron/lambda/interp"
	"github.com/wdamron/lambda/parser"
	"github.com/wdamron/lambda/types"
)

const (
	banner     = "lambda: type :help for help, :quit to exit"
	promptCont = "... "
	helpText   = `Enter an expression to type-check and evaluate it.

  \x. body             function (λ may be used for \)
  f x y                application
  let x = e1 in e2     (recursive) let binding
  unit, (), true, 42   literals

Commands:
  :type <expr>         print the type of an expression
  :env                 list the names in scope with their types
  :dump <expr>         print the parsed tree of an expression
  :help                show this help
  :quit                exit
`
)

func runREPL(ip *interp.Interpreter, opts options, stdout io.Writer) int {
	fmt.Fprintln(stdout, banner)

	histPath := opts.cfg.History
	if home, err := os.UserHomeDir(); err == nil && histPath != "" && !filepath.IsAbs(histPath) {
		histPath = filepath.Join(home, histPath)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	for {
		src, ok := readUnit(ln, opts.cfg.Prompt)
		if !ok {
			fmt.Fprintln(stdout)
			break
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			if done := handleCommand(ip, stdout, src); done {
				break
			}
			continue
		}
		execUnit(ip, opts, src, stdout, stdout, "")
	}

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}
	return 0
}

// readUnit reads lines until the parser accepts the buffer or reports an error which
// more input cannot fix.
func readUnit(ln *liner.State, prompt string) (string, bool) {
	var b strings.Builder
	for {
		p := prompt
		if b.Len() > 0 {
			p = promptCont
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C discards the pending input
			return "", true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		if _, err := parser.Parse(src); !parser.IsIncomplete(err) {
			return src, true
		}
	}
}

func handleCommand(ip *interp.Interpreter, stdout io.Writer, line string) (exit bool) {
	fields := strings.Fields(line)
	switch cmd := strings.ToLower(fields[0]); cmd {
	case ":quit", ":q", ":exit":
		return true

	case ":help", ":h":
		fmt.Fprint(stdout, helpText)

	case ":type", ":t":
		src := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0]))
		if src == "" {
			fmt.Fprintln(stdout, "usage: :type <expr>")
			return false
		}
		t, err := ip.TypeOf(src)
		if err != nil {
			fmt.Fprintln(stdout, err)
			return false
		}
		fmt.Fprintln(stdout, src, ":", types.TypeString(t))

	case ":env":
		for _, name := range ip.TypeEnv.Names() {
			s, _ := ip.TypeEnv.Lookup(name)
			fmt.Fprintln(stdout, name, ":", types.SchemeString(s))
		}

	case ":dump":
		src := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0]))
		expr, err := parser.Parse(src)
		if err != nil {
			fmt.Fprintln(stdout, err)
			return false
		}
		fmt.Fprintln(stdout, ast.ExprString(expr))
		fmt.Fprintln(stdout, dumpExpr(expr))

	default:
		fmt.Fprintf(stdout, "unknown command %s. Type :help for help.\n", cmd)
	}
	return false
}
