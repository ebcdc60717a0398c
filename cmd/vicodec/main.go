// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/boschglobal/dse.vicodec/internal/app/convert"
	"github.com/boschglobal/dse.vicodec/internal/app/send"
	"github.com/boschglobal/dse.vicodec/internal/app/summary"
	"github.com/boschglobal/dse.vicodec/internal/command"
)

var cmds = []command.CommandRunner{
	command.NewHelpCommand("help", func() { flag.Usage() }),
	summary.NewSummaryCommand("summary"),
	convert.NewConvertCommand("convert"),
	send.NewSendCommand("send"),
}

var usage = `
Tools for working with vehicle interface message captures.

Usage:

	vicodec [-logger <level>] <command> [option] <capture file>

	vicodec summary [-long] [-lines] <capture file>
	vicodec convert -schema <json|msgpack|fbs> [-degrade] <capture file> <output file>
	vicodec send -uri <redis uri> -name <name> <capture file>

`

func printUsage() {
	command.PrintUsage(flag.CommandLine.Output(), usage[1:], cmds)
}

func main() {
	os.Exit(main_())
}

func main_() int {
	flag.Usage = printUsage
	logLevel := flag.Int("logger", 3, "log level (select between 0..4)")
	flag.Parse()
	slog.SetDefault(NewLogger(os.Stderr, *logLevel))
	slog.Debug(fmt.Sprintf("Log level: %d", *logLevel))

	if flag.NArg() == 0 {
		printUsage()
		return 1
	}
	if err := command.DispatchCommand(flag.Arg(0), flag.Args()[1:], cmds); err != nil {
		slog.Error(err.Error())
		return 2
	}

	return 0
}
