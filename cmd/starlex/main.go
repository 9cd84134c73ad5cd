// Command starlex is a thin demonstration harness over the starlex
// scanner: it reads a file (or stdin) and prints the resulting token
// stream, or with -repl drops into an interactive line editor and lexes
// one paren-balanced chunk at a time. It is not a parser front end.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	starlex "github.com/mnimmny/starlarky"
)

const (
	appName     = "starlex"
	historyFile = ".starlex_history"
	promptMain  = "» "
	promptCont  = "… "
)

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func cyan(s string) string { return "\x1b[36m" + s + "\x1b[0m" }

func main() {
	repl := flag.Bool("repl", false, "start an interactive lexing prompt")
	flag.Usage = usage
	flag.Parse()

	if *repl {
		os.Exit(cmdRepl())
	}

	args := flag.Args()
	var src []byte
	var err error
	file := "<stdin>"
	if len(args) > 0 {
		file = args[0]
		src, err = os.ReadFile(file)
	} else {
		src, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		os.Exit(1)
	}
	os.Exit(dump(file, src))
}

func usage() {
	fmt.Fprintf(os.Stderr, `starlex — lex Starlark-family source and print its token stream

Usage:
  %s [file]      Lex file (or stdin) and print every token
  %s -repl       Interactive lexing prompt

`, appName, appName)
}

// dump lexes src to completion, printing one line per token and, at the
// end, every accumulated diagnostic with a caret snippet. Returns a
// process exit code: 0 if lexing produced no errors, 1 otherwise.
func dump(file string, src []byte) int {
	var errs starlex.ErrorList
	lx := starlex.NewLexer(file, src, starlex.DefaultOptions(), &errs)

	for {
		tok := lx.NextToken()
		printToken(tok)
		if tok.Kind == starlex.EOF {
			break
		}
	}

	for _, e := range errs.Errs() {
		fmt.Fprint(os.Stderr, starlex.Snippet(e, src))
	}
	if errs.Len() > 0 {
		return 1
	}
	return 0
}

func printToken(tok starlex.Token) {
	if tok.Value != nil {
		fmt.Printf("%-14s %4d:%-4d %v\n", tok.Kind, tok.Start, tok.End, tok.Value)
		return
	}
	fmt.Printf("%-14s %4d:%-4d\n", tok.Kind, tok.Start, tok.End)
}

func cmdRepl() (ret int) {
	fmt.Println(cyan("starlex REPL — Ctrl+C cancels input, Ctrl+D exits."))

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		chunk, ok := readByBracketProbe(ln)
		if !ok {
			fmt.Println()
			return 0
		}
		if strings.TrimSpace(chunk) == "" {
			continue
		}

		var errs starlex.ErrorList
		lx := starlex.NewLexer("<repl>", []byte(chunk), starlex.DefaultOptions(), &errs)
		for {
			tok := lx.NextToken()
			printToken(tok)
			if tok.Kind == starlex.EOF {
				break
			}
		}
		for _, e := range errs.Errs() {
			fmt.Fprint(os.Stderr, red(e.Error())+"\n")
		}
		ln.AppendHistory(strings.ReplaceAll(chunk, "\n", " "))
	}
}

// readByBracketProbe reads lines until brackets balance, giving the user a
// continuation prompt while inside an open paren/bracket/brace — the same
// heuristic a real front end would use to decide when a statement is
// complete, without needing a parser.
func readByBracketProbe(ln *liner.State) (string, bool) {
	var b strings.Builder
	depth := 0

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return b.String(), true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		for _, r := range line {
			switch r {
			case '(', '[', '{':
				depth++
			case ')', ']', '}':
				if depth > 0 {
					depth--
				}
			}
		}
		if depth <= 0 {
			return b.String(), true
		}
	}
}
