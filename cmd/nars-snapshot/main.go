// Command nars-snapshot persists a reasoner's current concept bag (each
// concept's priority and belief/question/goal/link counts), rule-firing
// counts, and an analytics summary into a sqlite file for offline
// inspection. It reads reasoner state only through Memory's read-only
// snapshot methods: the core reasoner has no notion of persistence, per
// spec.md §1; this binary supplies it entirely from the outside, the same
// role pkg/korel/store/sqlite plays for document state.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/cognicore/narscore/pkg/nars/analytics"
	nconfig "github.com/cognicore/narscore/pkg/nars/config"
	"github.com/cognicore/narscore/pkg/nars/narsese"
	"github.com/cognicore/narscore/pkg/nars/reasoner"
)

func main() {
	var (
		dbPath      = flag.String("db", "", "sqlite output path (required)")
		configPath  = flag.String("config", "", "Engine configuration YAML (optional)")
		narsesePath = flag.String("narsese", "", "File of Narsese lines to seed the reasoner with (required)")
		steps       = flag.Int("steps", 50, "Reasoner steps to run before snapshotting")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}
	if *narsesePath == "" {
		log.Fatal("--narsese required")
	}

	ctx := context.Background()

	cfg, err := (&nconfig.Loader{Path: *configPath}).Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	r := reasoner.New(cfg)

	lines, err := narsese.ReadLines(*narsesePath)
	if err != nil {
		log.Fatalf("read narsese file: %v", err)
	}
	for _, line := range lines {
		if _, err := r.InputNarsese(line); err != nil {
			log.Printf("skipping %q: %v", line, err)
		}
	}
	r.Run(*steps)

	store, err := openSnapshotDB(ctx, *dbPath)
	if err != nil {
		log.Fatalf("open snapshot db: %v", err)
	}
	defer store.Close()

	report := analytics.Report(r.Memory)
	if err := writeSnapshot(ctx, store, r.Memory, report); err != nil {
		log.Fatalf("write snapshot: %v", err)
	}

	fmt.Printf("wrote snapshot of %d concepts (%d beliefs) to %s\n",
		report.ConceptCount, report.TotalBeliefs, *dbPath)
}
