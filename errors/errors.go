/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrMalformedInput is returned when a per-region input file cannot be decoded
	ErrMalformedInput = errors.New("malformed input file")

	// ErrBadManifest is returned when the region manifest is missing or cannot be parsed
	ErrBadManifest = errors.New("bad region manifest")

	// ErrNoRegions is returned when region discovery finds nothing to combine
	ErrNoRegions = errors.New("no regions found")

	// ErrUnwritableOutput is returned when a combined output file cannot be written
	ErrUnwritableOutput = errors.New("unwritable output")

	// ErrUploadFailed is returned when a combined file cannot be stored remotely
	ErrUploadFailed = errors.New("upload failed")
)

// MalformedInputError reports a per-region file whose contents could not be decoded
type MalformedInputError struct {
	File string
	Err  error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input file %q: %v", e.File, e.Err)
}

func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// ManifestError reports a region manifest that is missing or unusable
type ManifestError struct {
	Path string
	Err  error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("bad region manifest %q: %v", e.Path, e.Err)
}

func (e *ManifestError) Is(target error) bool {
	return target == ErrBadManifest
}

func (e *ManifestError) Unwrap() error {
	return e.Err
}

// WriteError reports a combined output file that could not be written
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %q: %v", e.Path, e.Err)
}

func (e *WriteError) Is(target error) bool {
	return target == ErrUnwritableOutput
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// UploadError reports a combined file that could not be stored remotely
type UploadError struct {
	Bucket string
	Key    string
	Err    error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("uploading %q to bucket %q: %v", e.Key, e.Bucket, e.Err)
}

func (e *UploadError) Is(target error) bool {
	return target == ErrUploadFailed
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// Helper functions for creating errors

// NewMalformedInputError creates a new MalformedInputError
func NewMalformedInputError(file string, err error) error {
	return &MalformedInputError{File: file, Err: err}
}

// NewManifestError creates a new ManifestError
func NewManifestError(path string, err error) error {
	return &ManifestError{Path: path, Err: err}
}

// NewWriteError creates a new WriteError
func NewWriteError(path string, err error) error {
	return &WriteError{Path: path, Err: err}
}

// NewUploadError creates a new UploadError
func NewUploadError(bucket, key string, err error) error {
	return &UploadError{Bucket: bucket, Key: key, Err: err}
}

// IsMalformedInput checks if an error is a malformed input error
func IsMalformedInput(err error) bool {
	return errors.Is(err, ErrMalformedInput)
}

// IsBadManifest checks if an error is a manifest error
func IsBadManifest(err error) bool {
	return errors.Is(err, ErrBadManifest)
}

// IsNoRegions checks if an error reports an empty region set
func IsNoRegions(err error) bool {
	return errors.Is(err, ErrNoRegions)
}

// IsUnwritableOutput checks if an error is an output write error
func IsUnwritableOutput(err error) bool {
	return errors.Is(err, ErrUnwritableOutput)
}

// IsUploadFailed checks if an error is an upload error
func IsUploadFailed(err error) bool {
	return errors.Is(err, ErrUploadFailed)
}
