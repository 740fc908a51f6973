// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/beevik/term"
	"github.com/pmirajkar/mos6502/cpu"
	"github.com/pmirajkar/mos6502/host"
)

var (
	arch       string
	unofficial string
)

func init() {
	flag.StringVar(&arch, "arch", "nmos", "CPU architecture (nmos or 2a03)")
	flag.StringVar(&unofficial, "unofficial", "emulate", "unofficial opcode policy (emulate or ignore)")
	flag.CommandLine.Usage = func() {
		fmt.Println("Usage: mos6502 [options] [script] ..\nOptions:")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	a, err := parseArch(arch)
	if err != nil {
		exitOnError(err)
	}
	p, err := parsePolicy(unofficial)
	if err != nil {
		exitOnError(err)
	}

	h := host.New(a, p)

	// Run commands contained in command-line files.
	for _, filename := range flag.Args() {
		file, err := os.Open(filename)
		if err != nil {
			exitOnError(err)
		}
		err = h.RunCommands(file, os.Stdout, false)
		file.Close()
		switch {
		case errors.Is(err, host.ErrQuit):
			return
		case err != nil:
			exitOnError(err)
		}
	}

	// Break on Ctrl-C.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go handleInterrupt(h, c)

	// Run commands interactively.
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	err = h.RunCommands(os.Stdin, os.Stdout, interactive)
	if err != nil && !errors.Is(err, host.ErrQuit) {
		exitOnError(err)
	}
}

func parseArch(s string) (cpu.Architecture, error) {
	switch s {
	case "nmos", "6502":
		return cpu.NMOS, nil
	case "2a03", "rp2a03", "nes":
		return cpu.RP2A03, nil
	default:
		return cpu.NMOS, fmt.Errorf("unknown architecture '%s'", s)
	}
}

func parsePolicy(s string) (cpu.UnofficialPolicy, error) {
	switch s {
	case "emulate":
		return cpu.EmulateUnofficial, nil
	case "ignore":
		return cpu.IgnoreUnofficial, nil
	default:
		return cpu.EmulateUnofficial, fmt.Errorf("unknown unofficial opcode policy '%s'", s)
	}
}

func handleInterrupt(h *host.Host, c chan os.Signal) {
	for {
		<-c
		h.Break()
	}
}

func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}
