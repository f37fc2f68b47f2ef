// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	numvec "github.com/facebookincubator/go-numvec"

	"go.uber.org/zap"
)

// session binds script text to a typed array: it parses literals,
// coerces them to the array's kind and reports failures per operation.
type session[T numvec.Element] struct {
	arr *numvec.Array[T]
	out io.Writer
}

func newSession[T numvec.Element](c numvec.Config, out io.Writer) *session[T] {
	return &session[T]{arr: numvec.NewWithConfig[T](c), out: out}
}

// parseElement converts a literal into a T.  Integer literals are
// accepted by double arrays; float literals are a type error for long
// arrays.
func parseElement[T numvec.Element](tok string) (T, error) {
	var zero T
	kind := numvec.KindOf[T]()
	i, err := strconv.ParseInt(tok, 10, 64)
	switch {
	case err == nil:
		if kind == numvec.Double {
			return numvec.Convert[T](numvec.DoubleValue(float64(i)))
		}
		return numvec.Convert[T](numvec.LongValue(i))
	case errors.Is(err, strconv.ErrRange) && kind == numvec.Long:
		return zero, fmt.Errorf("%w: %s", numvec.ErrOverflow, tok)
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return zero, fmt.Errorf("%w: cannot parse %q", numvec.ErrType, tok)
	}
	return numvec.Convert[T](numvec.DoubleValue(f))
}

func parsePosition(tok string) (int, error) {
	pos, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: position %q is not an integer", numvec.ErrType, tok)
	}
	return pos, nil
}

func (s *session[T]) close() {
	s.arr.Release()
}

// exec runs a single script line.
func (s *session[T]) exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	op, args := strings.ToLower(fields[0]), fields[1:]
	arity := map[string][2]int{
		"append": {1, 1}, "insert": {2, 2}, "set": {2, 2}, "get": {1, 1},
		"pop": {0, 1}, "remove": {1, 1}, "search": {1, 1}, "contains": {1, 1},
		"len": {0, 0}, "cap": {0, 0}, "print": {0, 0}, "dump": {0, 0},
	}
	a, ok := arity[op]
	if !ok {
		return fmt.Errorf("unknown operation %q", op)
	}
	if len(args) < a[0] || len(args) > a[1] {
		return fmt.Errorf("%s: expected %d to %d arguments, got %d", op, a[0], a[1], len(args))
	}

	var err error
	switch op {
	case "append":
		var v T
		if v, err = parseElement[T](args[0]); err == nil {
			err = s.arr.Append(v)
		}
	case "insert", "set":
		var pos int
		var v T
		if pos, err = parsePosition(args[0]); err != nil {
			break
		}
		if v, err = parseElement[T](args[1]); err != nil {
			break
		}
		if op == "set" {
			err = s.arr.Set(pos, v)
		} else {
			s.arr, err = s.arr.Insert(pos, v)
		}
	case "get":
		var pos int
		var v T
		if pos, err = parsePosition(args[0]); err == nil {
			if v, err = s.arr.Get(pos); err == nil {
				fmt.Fprintln(s.out, numvec.Format(v))
			}
		}
	case "pop":
		pos := -1
		if len(args) == 1 {
			if pos, err = parsePosition(args[0]); err != nil {
				break
			}
		}
		var v T
		if v, s.arr, err = s.arr.Pop(pos); err == nil {
			fmt.Fprintln(s.out, numvec.Format(v))
		}
	case "remove":
		var v T
		if v, err = parseElement[T](args[0]); err == nil {
			s.arr, err = s.arr.Remove(v)
		}
	case "search":
		var v T
		var ix int
		if v, err = parseElement[T](args[0]); err == nil {
			if ix, err = s.arr.Search(v); err == nil {
				fmt.Fprintln(s.out, ix)
			}
		}
	case "contains":
		var v T
		if v, err = parseElement[T](args[0]); err == nil {
			fmt.Fprintln(s.out, s.arr.Contains(v))
		}
	case "len":
		fmt.Fprintln(s.out, s.arr.Len())
	case "cap":
		fmt.Fprintln(s.out, s.arr.Cap())
	case "print":
		fmt.Fprintln(s.out, s.arr.String())
	case "dump":
		s.arr.DebugDump(s.out)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// runScript executes every line read from r against a fresh array of
// kind T.  Failed lines are reported on out and counted; with failFast
// the first failure aborts the run.
func runScript[T numvec.Element](r io.Reader, out io.Writer, c numvec.Config, failFast bool, log *zap.SugaredLogger) (ops int, failed int, err error) {
	s := newSession[T](c, out)
	defer s.close()

	start := time.Now()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		ops++
		if e := s.exec(text); e != nil {
			failed++
			log.Debugw("operation failed", "line", line, "op", text, "error", e)
			fmt.Fprintf(out, "line %d: error: %s\n", line, e)
			if failFast {
				return ops, failed, fmt.Errorf("line %d: %w", line, e)
			}
		}
	}
	if err = scanner.Err(); err != nil {
		return
	}
	log.Infof("ran %d operations (%d failed) on a %s array in %s",
		ops, failed, numvec.KindOf[T](), time.Since(start))
	return
}
