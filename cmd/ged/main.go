// Command ged compares graph documents by graph edit distance.
//
//	ged distance a.yaml b.yaml --algorithm bipartite --edits --verify
//	ged iso a.yaml b.yaml --labels
//	ged check a.yaml b.json
//	ged random --nodes 6 --edges 8 --seed 3 > a.yaml
//
// Settings come from flags, then GED_* environment variables, then a YAML
// config file (--config, or ./ged.yaml when present).
package main

import (
	"os"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
