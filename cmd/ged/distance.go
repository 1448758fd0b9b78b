package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphedit/core"
	"github.com/katalvlaran/graphedit/ged"
	"github.com/katalvlaran/graphedit/graphio"
	"github.com/katalvlaran/graphedit/iso"
)

var errNotVerified = errors.New("edited graph is not isomorphic to the target")

func (a *app) distanceCommand() *cobra.Command {
	var edits, verify bool
	cmd := &cobra.Command{
		Use:   "distance SOURCE TARGET",
		Short: "Edit distance from SOURCE to TARGET",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g1, g2, err := readPair(args)
			if err != nil {
				return err
			}
			eng, algo, err := a.engine()
			if err != nil {
				return err
			}
			d, err := eng.Similarity(g1, g2)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "algorithm: %s\ndistance: %g\n", algo, d)
			if x, ok := eng.(*ged.Exact); ok {
				st := x.Stats()
				a.log.WithField("expanded", st.Expanded).WithField("pushed", st.Pushed).Info("search done")
			}
			if edits {
				fmt.Fprint(a.out, eng.EditList())
			}
			if verify {
				return a.verify(eng, algo, g1, g2)
			}

			return nil
		},
	}
	engineFlags(cmd.Flags())
	cmd.Flags().BoolVarP(&edits, "edits", "e", false, "print the edit list")
	cmd.Flags().BoolVar(&verify, "verify", false, "apply the edit list and check the result against TARGET")

	return cmd
}

// verify applies the witness of eng to g1 and compares with g2.
func (a *app) verify(eng ged.Engine, algo ged.Algorithm, g1, g2 *core.Graph) error {
	if algo == ged.AlgoHausdorff || algo == ged.AlgoLowerBound {
		return errors.Errorf("%s reports an estimate; its edit list cannot be applied", algo)
	}
	out, err := eng.EditList().Apply(g1)
	if err != nil {
		return errors.Wrap(err, "apply")
	}
	if !iso.Isomorphic(out, g2, iso.WithLabels(a.v.GetBool(keyRelabel))) {
		a.log.WithField("edited", out.String()).Debug("verification failed")

		return errNotVerified
	}
	fmt.Fprintln(a.out, "verified: true")

	return nil
}

func readPair(paths []string) (*core.Graph, *core.Graph, error) {
	g1, err := graphio.ReadFile(paths[0])
	if err != nil {
		return nil, nil, err
	}
	g2, err := graphio.ReadFile(paths[1])
	if err != nil {
		return nil, nil, err
	}

	return g1, g2, nil
}
