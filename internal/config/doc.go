// Package config provides configuration structures and utilities for
// ipfreq. It defines the scan and report options, their defaults, the
// validation rules applied before any scanning begins, and the optional
// YAML defaults file loader.
package config
