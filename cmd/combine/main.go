package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/input-output-hk/catalyst-forge-libs/fs/billy"

	"github.com/suparena/datacombine"
	"github.com/suparena/datacombine/config"
	"github.com/suparena/datacombine/objectstore/s3"
)

var (
	settingsFlag = flag.String("f", "", "Settings file (YAML)")
	contFlag     = flag.String("c", "", "Region manifest file")
	dataDirFlag  = flag.String("d", "", "Directory holding the per-region dataset files")
	outDirFlag   = flag.String("o", "", "Directory for combined output (defaults to the data directory)")
	bucketFlag   = flag.String("u", "", "S3 bucket receiving the combined files")
	discoverFlag = flag.Bool("g", false, "Discover regions from the data directory and rebuild the manifest")
	deleteFlag   = flag.Bool("x", false, "Delete per-region inputs after a successful run")
	expandedFlag = flag.Bool("e", false, "Combine the expanded dataset files")
	versionFlag  = flag.Bool("version", false, "Show version information")
	vFlag        = flag.Bool("v", false, "Show version information (short)")
)

func main() {
	// Parse flags early to catch version flag
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := datacombine.GetVersionInfo()
		fmt.Printf("DataCombine combine version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := run(logger); err != nil {
		logger.Error("combining failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	fsys := billy.NewOSFS("/")

	settingsPath, err := absPath(*settingsFlag)
	if err != nil {
		return err
	}
	settings, err := config.Resolve(fsys, settingsPath)
	if err != nil {
		return err
	}
	applyFlags(&settings)

	if settings.DataDir == "" {
		settings.DataDir = "."
	}
	if settings.DataDir, err = absPath(settings.DataDir); err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	manifestPath, err := absPath(settings.ManifestPath())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []datacombine.Option{
		datacombine.WithFilesystem(fsys),
		datacombine.WithLogger(logger),
		datacombine.WithExpanded(settings.Expanded),
		datacombine.WithDeleteInputs(settings.DeleteInputs),
		datacombine.WithRegionDiscovery(settings.DiscoverRegions),
	}
	if *outDirFlag != "" {
		outDir, err := absPath(*outDirFlag)
		if err != nil {
			return err
		}
		opts = append(opts, datacombine.WithOutputDir(outDir))
	}
	if settings.UploadBucket != "" {
		var storeOpts []s3.Option
		if settings.UploadRegion != "" {
			storeOpts = append(storeOpts, s3.WithRegion(settings.UploadRegion))
		}
		if settings.KMSKeyID != "" {
			storeOpts = append(storeOpts, s3.WithKMSKey(settings.KMSKeyID))
		}
		store, err := s3.New(ctx, settings.UploadBucket, storeOpts...)
		if err != nil {
			return err
		}
		opts = append(opts, datacombine.WithObjectStore(store))
	}

	c := datacombine.New(manifestPath, settings.DataDir, opts...)
	summary, err := c.Run(ctx)
	if err != nil {
		return err
	}

	logger.Info("run summary",
		"regions", len(summary.Regions),
		"written", len(summary.Written),
		"uploaded", len(summary.Uploaded),
		"deleted", len(summary.Deleted),
	)
	return nil
}

// applyFlags overlays flags the caller set explicitly, so a flag beats
// both the settings file and the environment.
func applyFlags(settings *config.Settings) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "c":
			settings.ManifestFile = *contFlag
		case "d":
			settings.DataDir = *dataDirFlag
		case "u":
			settings.UploadBucket = *bucketFlag
		case "g":
			settings.DiscoverRegions = *discoverFlag
		case "x":
			settings.DeleteInputs = *deleteFlag
		case "e":
			settings.Expanded = *expandedFlag
		}
	})
}

// absPath resolves path against the working directory. The filesystem
// layer is rooted at /, so every path it sees must be absolute. Empty
// paths pass through for the call sites where the value is optional.
func absPath(path string) (string, error) {
	if path == "" || filepath.IsAbs(path) {
		return path, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path %q: %w", path, err)
	}
	return abs, nil
}
