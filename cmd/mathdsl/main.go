// Command mathdsl is the interactive front end of the engine: a REPL
// when run bare, a one-shot interpreter with -e or -f.
//
//	mathdsl                          REPL; 'exit;' quits
//	mathdsl -e "2*x + 3 = 7;"        solve inline statements
//	mathdsl -f script.dsl            run a script file
//	mathdsl -dumpast ast.txt ...     append each parsed AST to a file
//	mathdsl -prec 6 ...              print 6 significant digits
//	mathdsl -vm ...                  evaluate through compiled bytecode
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/mathdsl/expr"
	"github.com/katalvlaran/mathdsl/interp"
	"github.com/katalvlaran/mathdsl/parse"
)

const (
	banner        = "Mathematical DSL Interpreter (type 'exit;' to quit)"
	dumpSeparator = "------------------------"
)

func main() {
	var (
		source   = flag.String("e", "", "execute the given statements and exit")
		script   = flag.String("f", "", "execute a script file and exit")
		dumpPath = flag.String("dumpast", "", "append each parsed statement's AST to this file")
		prec     = flag.Int("prec", -1, "significant digits to print (-1 = shortest exact)")
		useVM    = flag.Bool("vm", false, "evaluate expressions through compiled bytecode")
	)
	flag.Parse()

	if *source != "" && *script != "" {
		fmt.Fprintln(os.Stderr, "error: -e and -f are mutually exclusive")
		os.Exit(1)
	}

	var dump io.Writer
	if *dumpPath != "" {
		f, err := os.OpenFile(*dumpPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		dump = f
	}

	session := interp.NewSession(interp.WithCompiledEval(*useVM))

	switch {
	case *source != "":
		if err := runSource(session, *source, dump, *prec); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case *script != "":
		text, err := os.ReadFile(*script)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if err = runSource(session, string(text), dump, *prec); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	default:
		runREPL(session, dump, *prec)
	}
}

// runSource executes a whole script, stopping at the first failure.
func runSource(session *interp.Session, src string, dump io.Writer, prec int) error {
	stmts, err := parse.Statements(src)
	if err != nil {
		return err
	}

	for _, stmt := range stmts {
		if dump != nil {
			dumpStatement(dump, stmt)
		}
		out, err := session.Exec(stmt)
		if err != nil {
			return err
		}
		fmt.Println(renderOutcome(out, prec))
	}

	return nil
}

// runREPL reads statements from stdin until EOF or 'exit;'. Input
// accumulates across lines until a ';' completes a statement; errors
// are reported and the loop continues.
func runREPL(session *interp.Session, dump io.Writer, prec int) {
	fmt.Println(banner)

	sc := bufio.NewScanner(os.Stdin)
	var buf string
	for {
		if strings.TrimSpace(buf) == "" {
			fmt.Print("> ")
		} else {
			fmt.Print(".. ")
		}
		if !sc.Scan() {
			return
		}
		buf += sc.Text() + "\n"

		for {
			chunk, rest, ok := cutStatement(buf)
			if !ok {
				break
			}
			buf = rest

			if strings.TrimSpace(chunk) == "exit;" {
				return
			}
			execChunk(session, chunk, dump, prec)
		}
	}
}

// execChunk parses and runs one ';'-terminated chunk, reporting instead
// of propagating errors.
func execChunk(session *interp.Session, chunk string, dump io.Writer, prec int) {
	stmt, err := parse.Statement(chunk)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)

		return
	}
	if dump != nil {
		dumpStatement(dump, stmt)
	}

	out, err := session.Exec(stmt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)

		return
	}
	fmt.Println(renderOutcome(out, prec))
}

// cutStatement splits buf at the first ';', keeping the terminator on
// the returned chunk.
func cutStatement(buf string) (chunk, rest string, ok bool) {
	i := strings.IndexByte(buf, ';')
	if i < 0 {
		return "", buf, false
	}

	return buf[:i+1], buf[i+1:], true
}

// dumpStatement appends the statement's tree and a separator, matching
// the historical ast.txt format.
func dumpStatement(w io.Writer, stmt parse.Stmt) {
	switch t := stmt.(type) {
	case *parse.Assign:
		fmt.Fprintf(w, "Assign(%s)\n", t.Name)
		io.WriteString(w, indentDump(expr.Dump(t.Value)))
	case *parse.SolveEq:
		io.WriteString(w, expr.Dump(t.Eq))
	case *parse.Eval:
		io.WriteString(w, expr.Dump(t.Expr))
	}
	fmt.Fprintln(w, dumpSeparator)
}

// indentDump shifts a Dump rendering one level right, under a header.
func indentDump(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i := range lines {
		lines[i] = "  " + lines[i]
	}

	return strings.Join(lines, "\n") + "\n"
}

// renderOutcome prints an outcome, honoring the -prec flag; negative
// precision keeps the shortest exact rendering.
func renderOutcome(out interp.Outcome, prec int) string {
	if prec < 0 {
		return out.String()
	}

	switch t := out.(type) {
	case *interp.Value:
		return strconv.FormatFloat(t.Result, 'g', prec, 64)
	case *interp.Assigned:
		return t.Name + " = " + strconv.FormatFloat(t.Result, 'g', prec, 64)
	case *interp.Solved:
		var sb strings.Builder
		sb.WriteByte('{')
		for i, b := range t.Solution {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(b.Name)
			sb.WriteString(": ")
			sb.WriteString(strconv.FormatFloat(b.Value, 'g', prec, 64))
		}
		sb.WriteByte('}')

		return sb.String()
	default:
		return out.String()
	}
}
