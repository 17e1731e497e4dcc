// Command calcterm runs the calculator in a terminal.
//
//	calcterm [flags]              line REPL
//	calcterm [flags] keypad       one key press per key, raw terminal
//	calcterm [flags] watch FILE   run the key script in FILE on every change
//	calcterm [flags] -e SCRIPT    run SCRIPT and print the display line
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"sparkcalc/app/config"
	"sparkcalc/internal/buildinfo"
	"sparkcalc/internal/termui"
	"sparkcalc/sparkos/calc"
)

func main() {
	var (
		configPath string
		angle      string
		script     string
		histPath   string
		version    bool
	)
	flag.StringVar(&configPath, "config", "", "YAML config file.")
	flag.StringVar(&angle, "angle", "", "Angle mode: deg or rad (overrides the config file).")
	flag.StringVar(&script, "e", "", "Run a key script and print the display line.")
	flag.StringVar(&histPath, "history", defaultHistoryPath(), "Line history file (empty disables).")
	flag.BoolVar(&version, "version", false, "Print the build and exit.")
	flag.Parse()

	if version {
		fmt.Println("calcterm", buildinfo.String())
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if angle != "" {
		cfg.AngleMode = angle
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	if err := run(cfg, script, histPath, flag.Args()); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config.Config, script, histPath string, args []string) error {
	loc := cfg.Locale()

	if script != "" {
		sink := termui.NewSink(os.Stdout, loc, false)
		c := termui.NewCalculator(os.Stdout, sink, cfg.Angle())
		_, err := c.Exec(script)
		sink.Flush()
		return err
	}

	mode := "line"
	if len(args) > 0 {
		mode = args[0]
	}
	switch mode {
	case "line":
		sink := termui.NewSink(os.Stdout, loc, false)
		return termui.RunLine(termui.NewCalculator(os.Stdout, sink, cfg.Angle()), histPath)

	case "keypad":
		sink := termui.RawSink(os.Stdout, loc)
		sink.ShowHistory(5)
		return termui.RunKeypad(termui.NewCalculator(os.Stdout, sink, cfg.Angle()), os.Stdin)

	case "watch":
		if len(args) != 2 {
			return errors.New("usage: calcterm watch FILE")
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		// One sink for every run so a live terminal redraws the same block.
		sink := termui.NewSink(os.Stdout, loc, termui.IsTerminal(os.Stdout))
		sink.ShowHistory(calc.HistoryCapacity)
		return termui.Watch(ctx, args[1], func(data []byte, err error) {
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			c := termui.NewCalculator(os.Stdout, sink, cfg.Angle())
			if err := c.RunTape(data); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
			sink.Flush()
		})

	default:
		return fmt.Errorf("unknown mode %q (want line, keypad or watch)", mode)
	}
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sparkcalc_history")
}
