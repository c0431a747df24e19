// SPDX-License-Identifier: MIT
package main

import (
	"encoding/json"
	"io"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/lattix/export"
)

// writeJSON writes gd as indented node-link JSON.
func writeJSON(w io.Writer, gd export.GraphData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(gd)
}

func runJSON(cmd *commander.Command, args []string) (err error) {
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

	return writeJSON(w, r.Graph)
}

// JSONCmd writes the export graph of a lattice family as JSON.
func JSONCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runJSON,
		UsageLine: "json [options]",
		Short:     "export nodes and cover edges as JSON",
		Long: `
export the nodes and cover edges of a lattice family as JSON; with -label,
edges of the partition family carry their type code

	$ hasse json -family partition -n 3 -label

`,
		Flag: *flag.NewFlagSet("json", flag.ExitOnError),
	}
	commonFlags(&cmd.Flag)
	outputFlags(&cmd.Flag)

	return cmd
}
