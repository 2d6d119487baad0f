// Package batch analyzes many passwords concurrently.
//
// A Processor fans work out with errgroup and a concurrency limit. Results
// are returned in input order so callers can report them by line number
// without keeping the passwords around.
package batch
