package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/xerrors"
)

const ConfigFile = "waittime.yaml"

// Input: a line count N, then N lines of
//	C <service>[.<suffix>] <question> <response> <DD.MM.YYYY> <wait>
//	D <service>[.<suffix>] <question prefix> <response> <DD.MM.YYYY>[-<DD.MM.YYYY>]
// Each D line prints the rounded average wait, or "-" without matches.

func main() {
	if err := mainFunc(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed: %v\n", err)
		os.Exit(1)
	}
}

func mainFunc() error {
	configFile := pflag.StringP("config", "c", ConfigFile, "Path to YAML config")
	input := pflag.StringP("input", "i", "-", "Input file, - for stdin")
	output := pflag.StringP("output", "o", "-", "Output file, - for stdout")
	level := pflag.StringP("log-level", "l", "", "Log level (debug, info, warn, error)")
	logOutput := pflag.StringSlice("log-output", nil, "Log outputs (stderr, stdout or file paths)")
	prompt := pflag.BoolP("prompt", "p", false, "Print interactive prompts")
	pflag.Parse()

	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return xerrors.Errorf("config %s: %w", *configFile, err)
	}
	if pflag.CommandLine.Changed("log-level") {
		cfg.Log.Level = *level
	}
	if pflag.CommandLine.Changed("log-output") {
		cfg.Log.Output = *logOutput
	}
	if pflag.CommandLine.Changed("prompt") {
		cfg.Prompt = *prompt
	}

	logger, err := cfg.Logger()
	if err != nil {
		return xerrors.Errorf("logger: %w", err)
	}
	defer logger.Sync()
	sl := logger.Sugar()

	var in io.Reader = os.Stdin
	if *input != "-" {
		f, err := os.Open(*input)
		if err != nil {
			return xerrors.Errorf("open %s: %w", *input, err)
		}
		defer f.Close()
		in = f
	}

	var out io.Writer = os.Stdout
	if *output != "-" {
		f, err := os.Create(*output)
		if err != nil {
			return xerrors.Errorf("create %s: %w", *output, err)
		}
		defer f.Close()
		out = f
	}
	stdout := bufio.NewWriter(out)
	defer stdout.Flush()

	session := NewSession(in, stdout, sl, WithPrompt(cfg.Prompt))
	if err := session.Run(); err != nil {
		return xerrors.Errorf("run: %w", err)
	}
	if err := stdout.Flush(); err != nil {
		return xerrors.Errorf("flush: %w", err)
	}
	return nil
}
