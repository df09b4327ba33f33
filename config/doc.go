/*
Package config resolves run settings for the combiner CLI.

Settings come from four layers, lowest to highest precedence:

  - built-in defaults
  - a YAML settings file
  - DATACOMBINE_* environment variables
  - command-line flags (applied by the caller)

A settings file names the same knobs the flags do:

	datadir: /mnt/data/output
	contfile: continent.json
	uploadbucket: confluence-json
	delete: true

Environment overrides use the DATACOMBINE_ prefix, for example
DATACOMBINE_DATADIR or DATACOMBINE_UPLOAD_BUCKET, which keeps batch
container definitions free of argument plumbing.
*/
package config
