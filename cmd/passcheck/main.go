// Package main provides the entry point for the passcheck CLI.
//
// passcheck scores password strength on a 0-100 scale and explains how to
// improve it. Passwords are never logged, stored or written to reports.
//
// Usage:
//
//	passcheck                      # interactive menu
//	passcheck check                # read one password from stdin
//	passcheck batch passwords.txt  # analyze one password per line
//
// See --help for all available options.
package main

func main() {
	Execute()
}
