package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/graphedit/costmodel"
	"github.com/katalvlaran/graphedit/ged"
)

// Setting keys; each is also a flag name, a config key and GED_<KEY> in the
// environment with dashes replaced by underscores.
const (
	keyAlgorithm       = "algorithm"
	keyCosts           = "costs"
	keyRelabel         = "relabel"
	keyDegreeOrdering  = "degree-ordering"
	keyIsoShortCircuit = "iso-short-circuit"
	keySeedUpper       = "seed-upper-bound"
	keyRandomize       = "randomize"
	keySeed            = "seed"
	keyNodeCosts       = "node-costs"
	keyEdgeCosts       = "edge-costs"
	keyStrict          = "strict"
	keyEpsilon         = "epsilon"
)

// engineFlags registers the engine settings on fs with ged.DefaultOptions
// as defaults.
func engineFlags(fs *pflag.FlagSet) {
	def := ged.DefaultOptions()
	fs.StringP(keyAlgorithm, "a", ged.AlgoExact.String(), "exact, simple, bipartite, hausdorff or lowerbound")
	fs.StringToString(keyCosts, nil, "operation costs, e.g. delete_node=2,add_node=3 (default 1 each)")
	fs.Bool(keyRelabel, def.Relabel, "charge RELABEL_NODE for differing node labels")
	fs.Bool(keyDegreeOrdering, def.DegreeOrdering, "exact: expand high-degree nodes first")
	fs.Bool(keyIsoShortCircuit, def.IsoShortCircuit, "exact: finish states whose rest is isomorphic")
	fs.Bool(keySeedUpper, def.SeedUpperBound, "exact: seed the incumbent from the bipartite engine")
	fs.Bool(keyRandomize, def.Randomize, "simple: shuffle equal-degree nodes")
	fs.Int64(keySeed, def.Seed, "simple: shuffle seed")
	fs.Bool(keyNodeCosts, def.NodeCosts, "hausdorff: include node costs")
	fs.Bool(keyEdgeCosts, def.EdgeCosts, "hausdorff: include edge costs")
	fs.Bool(keyStrict, def.Strict, "hausdorff: never reuse a target node")
	fs.Float64(keyEpsilon, def.Epsilon, "exact: pruning tolerance")
}

// options reads ged.Options from the layered settings.
func (a *app) options() ged.Options {
	opts := ged.DefaultOptions()
	opts.Relabel = a.v.GetBool(keyRelabel)
	opts.DegreeOrdering = a.v.GetBool(keyDegreeOrdering)
	opts.IsoShortCircuit = a.v.GetBool(keyIsoShortCircuit)
	opts.SeedUpperBound = a.v.GetBool(keySeedUpper)
	opts.Randomize = a.v.GetBool(keyRandomize)
	opts.Seed = a.v.GetInt64(keySeed)
	opts.NodeCosts = a.v.GetBool(keyNodeCosts)
	opts.EdgeCosts = a.v.GetBool(keyEdgeCosts)
	opts.Strict = a.v.GetBool(keyStrict)
	opts.Epsilon = a.v.GetFloat64(keyEpsilon)
	opts.Logger = a.log

	return opts
}

// costs reads the cost table. An empty table means unit cost for every
// kind the configuration requires.
func (a *app) costs(relabel bool) (costmodel.CostMap, error) {
	var raw map[string]interface{}
	if v := a.v.Get(keyCosts); v != nil {
		var err error
		if raw, err = cast.ToStringMapE(v); err != nil {
			return nil, errors.Wrap(err, keyCosts)
		}
	}
	if len(raw) == 0 {
		unit := costmodel.CostMap{}
		for _, k := range (costmodel.Requirements{Relabel: relabel}).Required() {
			unit[k] = 1
		}

		return unit, nil
	}
	table := make(map[string]float64, len(raw))
	for name, v := range raw {
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, errors.Wrapf(costmodel.ErrInvalidCost, "%s=%v is not a number", name, v)
		}
		table[name] = f
	}

	return costmodel.ParseCostMap(table)
}

// engine builds the configured engine.
func (a *app) engine() (ged.Engine, ged.Algorithm, error) {
	algo, err := ged.ParseAlgorithm(a.v.GetString(keyAlgorithm))
	if err != nil {
		return nil, algo, err
	}
	opts := a.options()
	costs, err := a.costs(opts.Relabel)
	if err != nil {
		return nil, algo, err
	}
	eng, err := ged.New(algo, costs, opts)
	if err != nil {
		return nil, algo, err
	}
	a.log.WithField("algorithm", algo).WithField("relabel", opts.Relabel).Debug("engine ready")

	return eng, algo, nil
}
