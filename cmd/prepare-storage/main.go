// Command prepare-storage makes sure the storage layer is ready
// for use: it creates the Postgres schema and seeds the sample
// puzzles.  With -reset it first flushes the cache and drops the
// schema, rebuilding both from scratch.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/jalil-salame/nsudoku-solve/dbprep"
)

func main() {
	reset := flag.Bool("reset", false, "flush the cache and rebuild the database")
	flag.Parse()

	ctx := context.Background()
	var err error
	if *reset {
		err = dbprep.ReinitializeAll(ctx)
	} else {
		err = dbprep.EnsureData(ctx)
	}
	if err != nil {
		slog.Error("storage preparation failed", "err", err)
		os.Exit(1)
	}
	slog.Info("storage is ready", "reset", *reset)
}
