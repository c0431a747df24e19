// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func runInfo(cmd *commander.Command, args []string) error {
	logger := setup()
	r, err := load(loadConfig{
		family:      family,
		n:           size,
		maxElements: maxElements,
		closure:     closure,
		properties:  true,
		logger:      logger,
	})
	if err != nil {
		return err
	}
	printInfo(os.Stdout, r)

	return nil
}

// printInfo writes a human-readable summary of r to w.
func printInfo(w io.Writer, r *report) {
	key := color.New(color.FgCyan).SprintFunc()
	list := func(xs []string) string { return "[" + strings.Join(xs, " ") + "]" }

	fmt.Fprintf(w, "%s %s\n", key("family:"), r.Family)
	fmt.Fprintf(w, "%s %d (%d covers, %s closure)\n", key("elements:"), len(r.Elements), r.Covers, r.Closure)
	fmt.Fprintf(w, "%s %s\n", key("universe:"), list(r.Elements))
	if !r.Bounded {
		fmt.Fprintf(w, "%s %s\n", key("bounded:"), yesNo(false))
	} else {
		fmt.Fprintf(w, "%s %s .. %s\n", key("bounds:"), r.Bottom, r.Top)
		fmt.Fprintf(w, "%s %s\n", key("atoms:"), list(r.Atoms))
		fmt.Fprintf(w, "%s %s\n", key("coatoms:"), list(r.Coatoms))
		fmt.Fprintf(w, "%s %s\n", key("join-irreducible:"), list(r.JoinIrreducibles))
		fmt.Fprintf(w, "%s %s\n", key("meet-irreducible:"), list(r.MeetIrreducibles))
	}
	if !r.Checked {
		return
	}
	if r.LatticeErr != nil {
		fmt.Fprintf(w, "%s %s (%v)\n", key("lattice:"), yesNo(false), r.LatticeErr)
		return
	}
	fmt.Fprintf(w, "%s %s\n", key("lattice:"), yesNo(true))
	fmt.Fprintf(w, "%s %s\n", key("distributive:"), yesNo(r.Distributive))
	fmt.Fprintf(w, "%s %s\n", key("modular:"), yesNo(r.Modular))
	fmt.Fprintf(w, "%s %s\n", key("complemented:"), yesNo(r.Complemented))
}

func yesNo(ok bool) string {
	if ok {
		return color.GreenString("yes")
	}

	return color.RedString("no")
}

// InfoCmd prints element counts, bounds, irreducibles and lattice properties.
func InfoCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runInfo,
		UsageLine: "info [options]",
		Short:     "summarize a lattice family",
		Long: `
summarize a lattice family: elements, bounds, irreducibles, and whether it is
a distributive, modular or complemented lattice

	$ hasse info -family partition -n 4

`,
		Flag: *flag.NewFlagSet("info", flag.ExitOnError),
	}
	commonFlags(&cmd.Flag)

	return cmd
}
