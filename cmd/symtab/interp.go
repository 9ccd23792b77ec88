package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/pkg/errors"

	"symtab"
)

var errMissingArgument = errors.New("missing argument")

// interpreter reads whitespace separated commands and applies them to a
// table it owns.
type interpreter struct {
	table symtab.SymbolTable[string, int]
	out   io.Writer
	log   *slog.Logger

	tokens   *bufio.Scanner
	commands int
	failures int
}

func newInterpreter(out io.Writer, logger *slog.Logger) *interpreter {
	return &interpreter{
		table: symtab.New[string, int](),
		out:   out,
		log:   logger.With("system", "symtab"),
	}
}

// Run executes commands until r is exhausted. Failed operations are reported
// on the output and do not stop the loop.
func (in *interpreter) Run(r io.Reader) error {
	in.tokens = bufio.NewScanner(r)
	in.tokens.Split(bufio.ScanWords)

	for in.tokens.Scan() {
		cmd := in.tokens.Text()
		in.commands++
		in.log.Debug("dispatching command", "cmd", cmd)

		if err := in.dispatch(cmd); err != nil {
			in.failures++
			fmt.Fprintf(in.out, "error: %v\n", err)
			if errors.Is(err, errMissingArgument) {
				break
			}
		}
	}
	if err := in.tokens.Err(); err != nil {
		return errors.Wrap(err, "reading commands")
	}

	in.log.Info("session finished", "commands", in.commands, "failures", in.failures, "size", in.table.Size())
	return nil
}

func (in *interpreter) dispatch(cmd string) error {
	switch cmd {
	case "put":
		key, err := in.arg(cmd)
		if err != nil {
			return err
		}
		val, err := in.intArg(cmd)
		if err != nil {
			return err
		}
		return in.table.Put(key, val)
	case "get":
		key, err := in.arg(cmd)
		if err != nil {
			return err
		}
		val, err := in.table.Get(key)
		if err != nil {
			return err
		}
		fmt.Fprintf(in.out, "%s = %d\n", key, val)
	case "del":
		key, err := in.arg(cmd)
		if err != nil {
			return err
		}
		return in.table.Delete(key)
	case "contains":
		key, err := in.arg(cmd)
		if err != nil {
			return err
		}
		ok, err := in.table.Contains(key)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.out, ok)
	case "size":
		fmt.Fprintln(in.out, in.table.Size())
	case "keys":
		for _, k := range in.table.Keys() {
			fmt.Fprintln(in.out, k)
		}
	case "print":
		in.table.Each(func(n symtab.Node[string, int]) {
			fmt.Fprintf(in.out, "%s = %d\n", n.Key(), n.Value())
		})
	case "check":
		fmt.Fprintln(in.out, in.table.Check(in.out))
	case "rank":
		key, err := in.arg(cmd)
		if err != nil {
			return err
		}
		rank, err := in.table.Rank(key)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.out, rank)
	case "select":
		rank, err := in.intArg(cmd)
		if err != nil {
			return err
		}
		key, err := in.table.Select(rank)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.out, key)
	case "min":
		key, err := in.table.Min()
		if err != nil {
			return err
		}
		fmt.Fprintln(in.out, key)
	case "max":
		key, err := in.table.Max()
		if err != nil {
			return err
		}
		fmt.Fprintln(in.out, key)
	case "height":
		fmt.Fprintln(in.out, in.table.Height())
	case "tree":
		fmt.Fprint(in.out, in.table.String())
	default:
		fmt.Fprintf(in.out, "unknown command: %s\n", cmd)
	}
	return nil
}

// arg consumes the next token as an argument of cmd.
func (in *interpreter) arg(cmd string) (string, error) {
	if !in.tokens.Scan() {
		return "", errors.Wrap(errMissingArgument, cmd)
	}
	return in.tokens.Text(), nil
}

// intArg consumes the next token as an integer argument of cmd.
func (in *interpreter) intArg(cmd string) (int, error) {
	tok, err := in.arg(cmd)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, errors.Wrapf(symtab.ErrInvalidArgument, "%s: %q is not an integer", cmd, tok)
	}
	return n, nil
}
