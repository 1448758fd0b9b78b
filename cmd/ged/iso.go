package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphedit/iso"
)

func (a *app) isoCommand() *cobra.Command {
	var nodeLabels, edgeLabels bool
	cmd := &cobra.Command{
		Use:   "iso A B",
		Short: "Report whether A and B are isomorphic",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g1, g2, err := readPair(args)
			if err != nil {
				return err
			}
			var opts []iso.Option
			if nodeLabels {
				opts = append(opts, iso.WithNodeLabels())
			}
			if edgeLabels {
				opts = append(opts, iso.WithEdgeLabels())
			}
			m, ok := iso.Mapping(g1, g2, opts...)
			fmt.Fprintf(a.out, "isomorphic: %t\n", ok)
			if ok {
				fmt.Fprintf(a.out, "mapping: %v\n", m)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&nodeLabels, "labels", false, "require equal node labels")
	cmd.Flags().BoolVar(&edgeLabels, "edge-labels", false, "require equal edge labels")

	return cmd
}
