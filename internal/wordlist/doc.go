// Package wordlist provides the common-password set used by the analyzer
// and the sources it can be loaded from.
//
// A Set is built once, normalized to lowercase, and never modified
// afterwards, so a single Set can be shared by any number of concurrent
// analyses without locking.
//
// Loading goes through the Source interface. Load never fails: when a
// source is missing, broken or empty it logs the problem and returns the
// built-in Default set instead.
package wordlist
