package main

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/vptree/sample"
	"github.com/viant/vptree/vptree"
)

func TestRun_Query(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{Mode: ModeQuery, Points: 200, K: 4, Seed: 3}
	require.NoError(t, run(context.Background(), cfg, newLogger(&buf, "info", "text")))
	assert.Contains(t, buf.String(), "queries done")
	assert.Contains(t, buf.String(), "queries=200")
}

func TestRun_Verify(t *testing.T) {
	cfg := &Config{Mode: ModeVerify, Points: 300, K: 6, Queries: 50, Seed: 11}
	assert.NoError(t, run(context.Background(), cfg, newLogger(io.Discard, "info", "text")))
}

func TestRun_Bench(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{Mode: ModeBench, K: 3, Seed: 5, BenchMax: 64}
	require.NoError(t, run(context.Background(), cfg, newLogger(&buf, "info", "json")))
	assert.Equal(t, 3, strings.Count(buf.String(), `"msg":"bench"`))
}

func TestRun_SaveThenLoad(t *testing.T) {
	db := filepath.Join(t.TempDir(), "points.db")
	logger := newLogger(io.Discard, "info", "text")

	cfg := &Config{Mode: ModeVerify, Points: 120, K: 3, Seed: 9, DB: db, Save: true}
	require.NoError(t, run(context.Background(), cfg, logger))

	cfg = &Config{Mode: ModeQuery, K: 3, DB: db}
	points, err := loadPoints(context.Background(), cfg, 0, logger)
	require.NoError(t, err)
	assert.Len(t, points, 120)
}

func TestLoadPoints_EmptyDB(t *testing.T) {
	db := filepath.Join(t.TempDir(), "empty.db")
	cfg := &Config{Mode: ModeQuery, DB: db}
	_, err := loadPoints(context.Background(), cfg, 1, newLogger(io.Discard, "info", "text"))
	assert.Error(t, err)
}

func TestRun_RandomSeedLeavesConfigUntouched(t *testing.T) {
	cfg := &Config{Mode: ModeVerify, Points: 40, K: 2}
	want := *cfg
	require.NoError(t, run(context.Background(), cfg, newLogger(io.Discard, "debug", "text")))
	assert.Equal(t, want, *cfg)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := &Config{Mode: ModeQuery, Points: 10, K: 2, Seed: 1}
	assert.ErrorIs(t, run(ctx, cfg, newLogger(io.Discard, "info", "text")), context.Canceled)
}

func TestSameDistances(t *testing.T) {
	a := []vptree.Result[sample.Point]{{Item: sample.Point{ID: 1}, Distance: 1}, {Item: sample.Point{ID: 2}, Distance: 2}}
	b := []vptree.Result[sample.Point]{{Item: sample.Point{ID: 3}, Distance: 1}, {Item: sample.Point{ID: 2}, Distance: 2}}
	assert.True(t, sameDistances(a, b))
	assert.False(t, sameDistances(a, b[:1]))
	b[1].Distance = 2.5
	assert.False(t, sameDistances(a, b))
}
