// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package main

import (
	"fmt"
	"io"
	"os"

	numvec "github.com/facebookincubator/go-numvec"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

func kindFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "kind",
		Aliases: []string{"k", "typecode"},
		Value:   "long",
		Usage:   "element kind: long (i) or double (d)",
	}
}

func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func newApp() *cli.App {
	var log *zap.SugaredLogger
	return &cli.App{
		Name:  "numvec",
		Usage: "drive a typed numeric array from the command line",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log every failed operation",
			},
		},
		Before: func(c *cli.Context) (err error) {
			log, err = newLogger(c.Bool("verbose"))
			return
		},
		After: func(c *cli.Context) error {
			if log != nil {
				_ = log.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run a script of array operations, one per line",
				Flags: []cli.Flag{
					kindFlag(),
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"in", "i"},
						Usage:   "file to read from (default is stdin)",
					},
					&cli.IntFlag{
						Name:    "capacity",
						Aliases: []string{"c"},
						Value:   numvec.MinCapacity,
						Usage:   "initial capacity of the array",
					},
					&cli.IntFlag{
						Name:  "prefilter",
						Value: numvec.DefaultConfig.PrefilterThreshold,
						Usage: "length from which value lookups use a bloom prefilter (0 disables)",
					},
					&cli.BoolFlag{
						Name:  "fail-fast",
						Usage: "stop at the first failing operation",
					},
				},
				Action: func(c *cli.Context) error {
					kind, err := numvec.ParseKind(c.String("kind"))
					if err != nil {
						return err
					}
					if c.NArg() > 0 {
						return fmt.Errorf("unexpected command line arguments: %q", c.Args().Slice())
					}

					var reader io.Reader
					if c.IsSet("input") {
						f, err := os.Open(c.String("input"))
						if err != nil {
							return err
						}
						reader = f
						defer f.Close()
					} else {
						reader = os.Stdin
					}

					cfg := numvec.DefaultConfig
					cfg.Capacity = c.Int("capacity")
					cfg.PrefilterThreshold = c.Int("prefilter")

					var failed int
					if kind == numvec.Double {
						_, failed, err = runScript[float64](reader, c.App.Writer, cfg, c.Bool("fail-fast"), log)
					} else {
						_, failed, err = runScript[int64](reader, c.App.Writer, cfg, c.Bool("fail-fast"), log)
					}
					if err != nil {
						return err
					}
					if failed > 0 {
						return fmt.Errorf("%d operations failed", failed)
					}
					return nil
				},
			},
			{
				Name:      "search",
				Usage:     "binary search sorted elements for a value",
				ArgsUsage: "[--] ELEMENTS...",
				Flags: []cli.Flag{
					kindFlag(),
					&cli.StringFlag{
						Name:     "value",
						Required: true,
						Usage:    "value to look for",
					},
				},
				Action: func(c *cli.Context) error {
					kind, err := numvec.ParseKind(c.String("kind"))
					if err != nil {
						return err
					}
					var ix int
					if kind == numvec.Double {
						ix, err = search[float64](c.String("value"), c.Args().Slice(), log)
					} else {
						ix, err = search[int64](c.String("value"), c.Args().Slice(), log)
					}
					if err != nil {
						return fmt.Errorf("search: %w", err)
					}
					fmt.Fprintln(c.App.Writer, ix)
					return nil
				},
			},
			{
				Name:  "explain",
				Usage: "describe the array configuration sized for a number of entries",
				Flags: []cli.Flag{
					kindFlag(),
					&cli.IntFlag{
						Name:    "entries",
						Aliases: []string{"n"},
						Usage:   "expected number of entries",
					},
				},
				Action: func(c *cli.Context) error {
					kind, err := numvec.ParseKind(c.String("kind"))
					if err != nil {
						return err
					}
					cfg := numvec.SizeFor(c.Int("entries"))
					cfg.Explain(c.App.Writer, kind)
					return nil
				},
			},
		},
	}
}

// search builds an array from the given sorted elements and binary
// searches it for value.
func search[T numvec.Element](value string, elements []string, log *zap.SugaredLogger) (int, error) {
	target, err := parseElement[T](value)
	if err != nil {
		return numvec.NotFound, err
	}
	values := make([]T, 0, len(elements))
	for _, e := range elements {
		v, err := parseElement[T](e)
		if err != nil {
			return numvec.NotFound, err
		}
		values = append(values, v)
	}
	if !slices.IsSorted(values) {
		log.Warnw("elements are not sorted, the result is unspecified", "elements", len(values))
	}
	arr, err := numvec.From(values...)
	if err != nil {
		return numvec.NotFound, err
	}
	defer arr.Release()
	return arr.Search(target)
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
