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

	lox "github.com/giacomocavalieri/glox"
)

const (
	appName     = "lox"
	historyFile = ".lox_history"
	promptMain  = "> "
)

var banner = fmt.Sprintf("Lox %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit, :help for commands.", lox.Version)

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }
func blue(s string) string  { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl())
	case "version":
		fmt.Println(lox.Version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`Lox %s

Usage:
  %s run [--ast] <file.lox>    Run a script, exiting 1 on scan/parse diagnostics or a runtime error.
  %s repl                      Start the interactive REPL.
  %s version                   Print the compiled version.

`, lox.Version, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	printAstOnly := fs.Bool("ast", false, "print each statement's parenthesized AST instead of running it")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	paths := fs.Args()
	if len(paths) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run [--ast] <file.lox>\n", appName)
		return 2
	}

	src, err := os.ReadFile(paths[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, paths[0], err)
		return 1
	}
	source := string(src)

	statements, diags := lox.Compile(source)
	for _, d := range diags.ScanErrors {
		fmt.Fprintln(os.Stderr, red(lox.Render(d, source)))
	}
	for _, d := range diags.ParseErrors {
		fmt.Fprintln(os.Stderr, red(lox.Render(d, source)))
	}
	if diags.HasErrors() {
		return 1
	}

	if *printAstOnly {
		for _, stmt := range statements {
			printAstOf(stmt)
		}
		return 0
	}

	sink := func(line string) { fmt.Println(line) }
	if err := lox.Evaluate(statements, sink); err != nil {
		fmt.Fprintln(os.Stderr, red(lox.Render(err, source)))
		return 1
	}
	return 0
}

// printAstOf writes a statement's S-expression form, sharing the rendering
// logic the REPL's :ast command uses.
func printAstOf(stmt lox.Statement) {
	switch s := stmt.(type) {
	case *lox.ExpressionStmt:
		fmt.Println(blue(lox.ExpressionToString(s.Expr)))
	case *lox.PrintStmt:
		fmt.Println(blue(lox.ExpressionToString(s.Expr)))
	}
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl() (ret int) {
	fmt.Println(banner)

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
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			break
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		ln.AppendHistory(trimmed)

		if strings.HasPrefix(trimmed, ":") {
			if !replCommand(trimmed) {
				return 0
			}
			continue
		}

		evalRepl(trimmed)
	}
	return 0
}

// replCommand handles a leading ":" REPL command and reports whether the
// REPL should continue (false only for :quit).
func replCommand(trimmed string) bool {
	fields := strings.Fields(trimmed)
	switch fields[0] {
	case ":quit":
		return false
	case ":help":
		fmt.Println(`REPL commands:
  :quit        Exit the REPL
  :ast <expr>  Print the parenthesized AST of an expression (no trailing ';')`)
	case ":ast":
		rest := strings.TrimSpace(strings.TrimPrefix(trimmed, ":ast"))
		printAst(rest)
	default:
		fmt.Printf("unknown command %q. Type :help.\n", fields[0])
	}
	return true
}

// printAst parses src as a single bare expression (a trailing ';' is
// tolerated, since :ast <expr>; also reads naturally) and prints its
// S-expression form.
func printAst(src string) {
	if !strings.HasSuffix(strings.TrimSpace(src), ";") {
		src += ";"
	}
	tokens, scanErrs := lox.ScanAll(src)
	if len(scanErrs) > 0 {
		for _, e := range scanErrs {
			fmt.Fprintln(os.Stderr, red(lox.Render(e, src)))
		}
		return
	}
	results := lox.Parse(tokens)
	if len(results) != 1 || results[0].Err != nil {
		if len(results) == 1 {
			fmt.Fprintln(os.Stderr, red(lox.Render(results[0].Err, src)))
		}
		return
	}
	printAstOf(results[0].Stmt)
}

func evalRepl(src string) {
	if !strings.HasSuffix(src, ";") {
		src += ";"
	}
	statements, diags := lox.Compile(src)
	for _, d := range diags.ScanErrors {
		fmt.Fprintln(os.Stderr, red(lox.Render(d, src)))
	}
	for _, d := range diags.ParseErrors {
		fmt.Fprintln(os.Stderr, red(lox.Render(d, src)))
	}
	if diags.HasErrors() {
		return
	}

	if err := lox.Evaluate(statements, func(line string) { fmt.Println(green(line)) }); err != nil {
		fmt.Fprintln(os.Stderr, red(lox.Render(err, src)))
	}
}
