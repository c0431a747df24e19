// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/lattix/dot"
	"github.com/katalvlaran/lattix/export"
)

var (
	dotFormat  string
	dotRankDir string
)

// writeDiagram writes gd as DOT text or, for "svg" and "png", as an image.
func writeDiagram(w io.Writer, gd export.GraphData, format string, opts ...dot.Option) error {
	switch format {
	case "dot":
		return dot.Encode(w, gd, opts...)
	case "svg":
		return dot.Render(w, gd, dot.SVG, opts...)
	case "png":
		return dot.Render(w, gd, dot.PNG, opts...)
	default:
		return fmt.Errorf("hasse: unknown format %q (want dot, svg or png)", format)
	}
}

func runDot(cmd *commander.Command, args []string) (err error) {
	logger := setup()
	r, err := load(loadConfig{
		family:      family,
		n:           size,
		maxElements: maxElements,
		closure:     closure,
		labels:      withLabels,
		logger:      logger,
	})
	if err != nil {
		return err
	}

	w, err := openOutput(outFile)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	logger.Info("writing diagram", "family", r.Family, "format", dotFormat, "labeled", r.Graph.Labeled())
	return writeDiagram(w, r.Graph, dotFormat, dot.WithName(r.Family), dot.WithRankDir(dotRankDir))
}

// DotCmd writes the Hasse diagram as DOT, SVG or PNG.
func DotCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runDot,
		UsageLine: "dot [options]",
		Short:     "draw the Hasse diagram",
		Long: `
draw the Hasse diagram of a lattice family as Graphviz DOT, or render it

	$ hasse dot -family boolean -n 3 -format svg -o b3.svg

`,
		Flag: *flag.NewFlagSet("dot", flag.ExitOnError),
	}
	commonFlags(&cmd.Flag)
	outputFlags(&cmd.Flag)
	cmd.Flag.StringVar(&dotFormat, "format", "dot", "output format: dot, svg or png")
	cmd.Flag.StringVar(&dotRankDir, "rankdir", "BT", "Graphviz rank direction")

	return cmd
}
