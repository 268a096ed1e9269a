// Command jay is an interactive shell over the tensorj pipeline: each
// line read is tokenized, parsed, and evaluated in turn, with the
// result printed in canonical J form. It is grounded on msg's REPL
// (liner for line editing and history, Ctrl-C aborts the current line
// rather than the process) but drops multi-line continuation probing:
// one line is always one statement here.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/aengebretson/tensorj/eval"
	"github.com/aengebretson/tensorj/lexer"
	"github.com/aengebretson/tensorj/parser"
)

const (
	prompt      = "   "
	historyFile = ".jay_history"
)

func main() {
	os.Exit(run())
}

func run() int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			f.Close()
		}
	}()

	env := eval.NewEnvironment()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "quit" || trimmed == "exit" {
			return 0
		}
		if trimmed == "" {
			continue
		}
		ln.AppendHistory(line)

		if err := evalLine(line, env); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

// evalLine runs one line through the tokenize/parse/evaluate pipeline
// and prints every statement's result, the same three stages the
// library exposes to non-interactive callers.
func evalLine(line string, env *eval.Environment) error {
	toks, lexErrs := lexer.Tokenize("<stdin>", line)
	if len(lexErrs) > 0 {
		return lexErrs[0]
	}

	prog, parseErr := parser.Parse("<stdin>", toks)
	if parseErr != nil {
		return parseErr
	}

	results, evalErr := eval.EvalProgram(prog, env)
	if evalErr != nil {
		return evalErr
	}
	for _, r := range results {
		fmt.Println(r.Format())
	}
	return nil
}
