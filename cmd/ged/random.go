package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphedit/builder"
	"github.com/katalvlaran/graphedit/graphio"
	"github.com/katalvlaran/graphedit/iso"
)

func (a *app) randomCommand() *cobra.Command {
	var (
		name               string
		nodes, edges       int
		directed, loops    bool
		seed               int64
		labels, edgeLabels []string
		permute            bool
		relabel            bool
		format, output     string
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Emit a random graph document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := graphio.ParseFormat(format)
			if err != nil {
				return err
			}
			var opts []builder.BuilderOption
			if len(labels) > 0 {
				opts = append(opts, builder.WithNodeAlphabet(labels...))
			}
			if len(edgeLabels) > 0 {
				opts = append(opts, builder.WithEdgeAlphabet(edgeLabels...))
			}
			if loops {
				opts = append(opts, builder.WithSelfLoops())
			}
			g, err := builder.Random(name, nodes, edges, directed, seed, opts...)
			if err != nil {
				return err
			}
			if permute {
				g = iso.GenerateRandomIsomorphicGraph(g, seed, relabel)
			}
			a.log.WithField("nodes", g.NodeCount()).WithField("edges", g.EdgeCount()).Debug("graph generated")

			if output != "" {
				return errors.Wrap(graphio.WriteFile(output, g), "random")
			}

			return graphio.Encode(a.out, g, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&name, "name", "random", "graph name")
	fl.IntVarP(&nodes, "nodes", "n", 5, "node count")
	fl.IntVarP(&edges, "edges", "m", 5, "edge count")
	fl.BoolVarP(&directed, "directed", "d", false, "directed graph")
	fl.BoolVar(&loops, "self-loops", false, "allow self-loops")
	fl.Int64Var(&seed, "seed", 1, "random seed")
	fl.StringSliceVar(&labels, "labels", nil, "node label alphabet (default decimal indices)")
	fl.StringSliceVar(&edgeLabels, "edge-labels", nil, "edge label alphabet")
	fl.BoolVar(&permute, "permute", false, "emit a randomly permuted isomorphic copy instead")
	fl.BoolVar(&relabel, "relabel", false, "with --permute: rename nodes \"node <i>\"")
	fl.StringVarP(&format, "format", "f", "yaml", "yaml or json (stdout only; files use their extension)")
	fl.StringVarP(&output, "output", "o", "", "write to this file instead of stdout")

	return cmd
}
