// Package config loads and validates the fansort TOML configuration. Values
// start from embedded defaults, are overridden by an optional config file,
// then normalized (path expansion) and validated. The technical keyword and
// release-group defaults live in the classify package; config can only
// append to them.
package config
