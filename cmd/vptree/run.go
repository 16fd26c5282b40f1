package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/viant/vptree/engine"
	"github.com/viant/vptree/sample"
	"github.com/viant/vptree/vptree"
)

func run(ctx context.Context, cfg *Config, logger *slog.Logger) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	logger.Debug("starting", "mode", cfg.Mode, "seed", seed)
	if cfg.Mode == ModeBench {
		return bench(ctx, cfg, seed, logger)
	}

	points, err := loadPoints(ctx, cfg, seed, logger)
	if err != nil {
		return err
	}
	started := time.Now()
	tree := vptree.Build(points, sample.Distance, vptree.WithSeed(seed))
	logger.Info("tree built", "points", tree.Len(), "height", tree.Height(), "elapsed", time.Since(started))

	queries := points
	if cfg.Queries > 0 && cfg.Queries < len(points) {
		queries = points[:cfg.Queries]
	}
	if cfg.Mode == ModeVerify {
		return verify(ctx, tree, points, queries, cfg.K, logger)
	}
	return query(ctx, tree, queries, cfg.K, logger)
}

func loadPoints(ctx context.Context, cfg *Config, seed uint64, logger *slog.Logger) ([]sample.Point, error) {
	generate := func() []sample.Point {
		return sample.Generate(cfg.Points, rand.New(rand.NewPCG(seed, seed)))
	}
	if cfg.DB == "" {
		return generate(), nil
	}

	db, err := engine.Open(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DB, err)
	}
	defer db.Close()

	if cfg.Save {
		points := generate()
		if err := sample.SavePoints(ctx, db, points); err != nil {
			return nil, err
		}
		logger.Info("points saved", "db", cfg.DB, "count", len(points))
		return points, nil
	}
	points, err := sample.LoadPoints(ctx, db)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("no points stored in %s, run with --save first", cfg.DB)
	}
	logger.Info("points loaded", "db", cfg.DB, "count", len(points))
	return points, nil
}

func query(ctx context.Context, tree *vptree.Tree[sample.Point], queries []sample.Point, k int, logger *slog.Logger) error {
	var total vptree.Stats
	started := time.Now()
	for i, q := range queries {
		if i%1024 == 0 && ctx.Err() != nil {
			return ctx.Err()
		}
		results, stats := tree.SearchWithStats(q, k)
		total.Visited += stats.Visited
		total.DistanceCalls += stats.DistanceCalls
		logger.Debug("query", "id", q.ID, "results", len(results), "visited", stats.Visited)
	}
	elapsed := time.Since(started)

	attrs := []any{"queries", len(queries), "k", k, "elapsed", elapsed}
	if n := len(queries); n > 0 {
		attrs = append(attrs,
			"avg_visited", float64(total.Visited)/float64(n),
			"avg_distance_calls", float64(total.DistanceCalls)/float64(n),
			"per_query", elapsed/time.Duration(n))
	}
	logger.Info("queries done", attrs...)
	return nil
}

func verify(ctx context.Context, tree *vptree.Tree[sample.Point], points, queries []sample.Point, k int, logger *slog.Logger) error {
	mismatches := 0
	for i, q := range queries {
		if i%256 == 0 && ctx.Err() != nil {
			return ctx.Err()
		}
		want := sample.BruteForce(points, q, k)
		got := tree.Search(q, k)
		if !sameDistances(want, got) {
			mismatches++
			logger.Warn("mismatch", "id", q.ID, "want", len(want), "got", len(got))
		}
	}
	logger.Info("verification done", "queries", len(queries), "k", k, "mismatches", mismatches)
	if mismatches > 0 {
		return fmt.Errorf("%d of %d queries differ from exhaustive search", mismatches, len(queries))
	}
	return nil
}

// sameDistances compares ranked distances only; ids may differ on ties.
func sameDistances(want, got []vptree.Result[sample.Point]) bool {
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if want[i].Distance != got[i].Distance {
			return false
		}
	}
	return true
}

func bench(ctx context.Context, cfg *Config, seed uint64, logger *slog.Logger) error {
	for n := 16; n <= cfg.BenchMax; n *= 2 {
		if err := ctx.Err(); err != nil {
			return err
		}
		points := sample.Generate(n, rand.New(rand.NewPCG(seed, uint64(n))))

		started := time.Now()
		for _, p := range points {
			sample.BruteForce(points, p, cfg.K)
		}
		brute := time.Since(started)

		started = time.Now()
		tree := vptree.Build(points, sample.Distance, vptree.WithSeed(seed))
		for _, p := range points {
			tree.Search(p, cfg.K)
		}
		indexed := time.Since(started)

		logger.Info("bench", "n", n, "k", cfg.K, "bruteforce", brute, "vptree", indexed,
			"speedup", float64(brute)/float64(max(indexed, 1)))
	}
	return nil
}
