/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/input-output-hk/catalyst-forge-libs/fs"
	"gopkg.in/yaml.v3"

	"github.com/suparena/datacombine/datasets"
)

// Settings collects the run parameters of one combining run.
type Settings struct {
	// DataDir is the directory holding the per-region files. Combined
	// files are written next to them.
	DataDir string `yaml:"datadir"`
	// ManifestFile is the region manifest. A bare file name is resolved
	// inside DataDir.
	ManifestFile string `yaml:"contfile"`
	// UploadBucket, when set, receives every combined file.
	UploadBucket string `yaml:"uploadbucket"`
	// UploadRegion pins the AWS region used for uploads.
	UploadRegion string `yaml:"uploadregion"`
	// KMSKeyID encrypts uploads with a specific KMS key instead of the
	// bucket's default key.
	KMSKeyID string `yaml:"kmskeyid"`
	// DeleteInputs removes the per-region files after a fully successful
	// run.
	DeleteInputs bool `yaml:"delete"`
	// Expanded combines the expanded-set files instead of the regular
	// ones.
	Expanded bool `yaml:"expanded"`
	// DiscoverRegions rebuilds the manifest from the data directory
	// instead of requiring one to exist.
	DiscoverRegions bool `yaml:"discover"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		ManifestFile: "continent.json",
	}
}

// Load reads a YAML settings file over the defaults.
func Load(fsys fs.Filesystem, path string) (Settings, error) {
	s := Default()
	data, err := fsys.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("reading settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing settings file %q: %w", path, err)
	}
	return s, nil
}

// FromEnv overlays DATACOMBINE_* environment variables onto s and returns
// the result.
func (s Settings) FromEnv() (Settings, error) {
	if v, ok := os.LookupEnv("DATACOMBINE_DATADIR"); ok {
		s.DataDir = v
	}
	if v, ok := os.LookupEnv("DATACOMBINE_CONTFILE"); ok {
		s.ManifestFile = v
	}
	if v, ok := os.LookupEnv("DATACOMBINE_UPLOAD_BUCKET"); ok {
		s.UploadBucket = v
	}
	if v, ok := os.LookupEnv("DATACOMBINE_UPLOAD_REGION"); ok {
		s.UploadRegion = v
	}
	if v, ok := os.LookupEnv("DATACOMBINE_KMS_KEY_ID"); ok {
		s.KMSKeyID = v
	}

	var err error
	if s.DeleteInputs, err = boolEnv("DATACOMBINE_DELETE", s.DeleteInputs); err != nil {
		return s, err
	}
	if s.Expanded, err = boolEnv("DATACOMBINE_EXPANDED", s.Expanded); err != nil {
		return s, err
	}
	if s.DiscoverRegions, err = boolEnv("DATACOMBINE_DISCOVER", s.DiscoverRegions); err != nil {
		return s, err
	}
	return s, nil
}

func boolEnv(name string, fallback bool) (bool, error) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}

// Resolve builds the effective settings: defaults, then the optional
// settings file, then environment overrides. An empty path skips the file.
func Resolve(fsys fs.Filesystem, path string) (Settings, error) {
	s := Default()
	if path != "" {
		loaded, err := Load(fsys, path)
		if err != nil {
			return s, err
		}
		s = loaded
	}
	return s.FromEnv()
}

// Validate checks that the settings describe a runnable combination.
func (s Settings) Validate() error {
	if s.DataDir == "" {
		return errors.New("data directory is required")
	}
	if s.ManifestFile == "" && !s.DiscoverRegions {
		return errors.New("manifest file is required unless discovery is enabled")
	}
	return nil
}

// ManifestPath resolves the manifest location. Paths that name a directory
// are used as-is; a bare file name lives in DataDir. Expanded runs prefix
// the default manifest name the same way they prefix dataset files, while
// an explicitly chosen name is respected unchanged.
func (s Settings) ManifestPath() string {
	name := s.ManifestFile
	if name == "" {
		name = Default().ManifestFile
	}
	if s.Expanded && name == Default().ManifestFile {
		name = datasets.ExpandedPrefix + name
	}
	if filepath.IsAbs(name) || filepath.Dir(name) != "." {
		return name
	}
	return filepath.Join(s.DataDir, name)
}
