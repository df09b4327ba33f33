//go:build integration
// +build integration

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datacombine_test

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/input-output-hk/catalyst-forge-libs/fs/billy"
	"github.com/joho/godotenv"

	"github.com/suparena/datacombine"
	"github.com/suparena/datacombine/datasets"
	"github.com/suparena/datacombine/objectstore/s3"
)

func seedDir(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, contents := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644); err != nil {
			t.Fatalf("Failed to seed %s: %v", name, err)
		}
	}
}

func setupTestBucket(t *testing.T) *s3.Store {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, proceeding with environment variables")
	}

	bucket := os.Getenv("DATACOMBINE_TEST_BUCKET")
	if bucket == "" {
		t.Skip("DATACOMBINE_TEST_BUCKET not set, skipping integration test")
	}

	var opts []s3.Option
	if region := os.Getenv("AWS_REGION"); region != "" {
		opts = append(opts, s3.WithRegion(region))
	}

	store, err := s3.New(context.Background(), bucket, opts...)
	if err != nil {
		t.Fatalf("Failed to create object store: %v", err)
	}

	return store
}

func TestIntegrationCombineOnDisk(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	dir := t.TempDir()
	seedDir(t, dir, map[string]string{
		"continent.json":       `["na", "eu"]`,
		"na_basin.json":        `[{"basin_id": 71}]`,
		"eu_basin.json":        `[{"basin_id": 21}]`,
		"na_cycle_passes.json": `{"1_1":[1]}`,
		"eu_cycle_passes.json": `{"2_1":[2]}`,
	})

	c := datacombine.New(filepath.Join(dir, "continent.json"), dir,
		datacombine.WithFilesystem(billy.NewOSFS("/")),
		datacombine.WithDeleteInputs(true),
	)

	summary, err := c.Run(ctx)
	if err != nil {
		t.Fatalf("Failed to combine: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "basin.json"))
	if err != nil {
		t.Fatalf("Failed to read combined basin: %v", err)
	}

	var basins []map[string]int
	if err := json.Unmarshal(data, &basins); err != nil {
		t.Fatalf("Combined basin does not parse: %v", err)
	}
	if len(basins) != 2 {
		t.Errorf("Expected 2 basins, got %d", len(basins))
	}

	if summary.Counts[datasets.CyclePasses] != 2 {
		t.Errorf("Expected 2 cycle_passes keys, got %d", summary.Counts[datasets.CyclePasses])
	}

	if _, err := os.Stat(filepath.Join(dir, "na_basin.json")); !os.IsNotExist(err) {
		t.Error("Expected per-region inputs to be deleted from disk")
	}
	if _, err := os.Stat(filepath.Join(dir, "continent.json")); err != nil {
		t.Errorf("Expected the manifest to survive on disk: %v", err)
	}
}

func TestIntegrationDiscoveryOnDisk(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	dir := t.TempDir()
	seedDir(t, dir, map[string]string{
		"na_reaches.json": `[{"reach_id": 1}]`,
		"sa_reaches.json": `[{"reach_id": 2}]`,
	})

	c := datacombine.New(filepath.Join(dir, "continent.json"), dir,
		datacombine.WithFilesystem(billy.NewOSFS("/")),
		datacombine.WithRegionDiscovery(true),
	)

	summary, err := c.Run(ctx)
	if err != nil {
		t.Fatalf("Failed to combine: %v", err)
	}

	if len(summary.Regions) != 2 || summary.Regions[0] != "na" || summary.Regions[1] != "sa" {
		t.Errorf("Expected regions [na sa], got %v", summary.Regions)
	}

	if _, err := os.Stat(filepath.Join(dir, "continent.json")); err != nil {
		t.Errorf("Expected discovery to write a manifest: %v", err)
	}
}

func TestIntegrationUploadToS3(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	store := setupTestBucket(t)

	dir := t.TempDir()
	seedDir(t, dir, map[string]string{
		"continent.json": `["na"]`,
		"na_basin.json":  `[{"basin_id": 71}]`,
	})

	c := datacombine.New(filepath.Join(dir, "continent.json"), dir,
		datacombine.WithFilesystem(billy.NewOSFS("/")),
		datacombine.WithObjectStore(store),
	)

	summary, err := c.Run(ctx)
	if err != nil {
		t.Fatalf("Failed to combine and upload: %v", err)
	}

	if len(summary.Uploaded) != 2 {
		t.Errorf("Expected 2 uploaded objects, got %v", summary.Uploaded)
	}
}
