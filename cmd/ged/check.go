package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphedit/graphio"
)

func (a *app) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Load graph documents and verify their consistency",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed int
			for _, path := range args {
				g, err := graphio.ReadFile(path)
				if err != nil {
					failed++
					a.log.WithError(err).WithField("file", path).Error("invalid graph")
					fmt.Fprintf(a.out, "%s: invalid\n", path)
					continue
				}
				st := g.Stats()
				fmt.Fprintf(a.out, "%s: ok nodes=%d edges=%d self-loops=%d parallel=%d max-degree=%d\n",
					path, st.NodeCount, st.EdgeCount, st.SelfLoops, st.ParallelEdges, st.MaxDegree)
			}
			if failed > 0 {
				return errors.Errorf("%d of %d documents invalid", failed, len(args))
			}

			return nil
		},
	}
}
