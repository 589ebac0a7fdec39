// Package main provides the entry point for the ipfreq CLI.
//
// ipfreq reads log-like text from files or standard input, extracts IP
// addresses from each line, tallies occurrence counts per distinct
// address, optionally resolves hostnames, and prints a sorted report.
//
// Usage:
//
//	ipfreq access.log
//	cat access.log | ipfreq --numeric
//
// See --help for all available options.
package main

// main is the entry point for ipfreq.
func main() {
	Execute()
}
