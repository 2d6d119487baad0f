// Package analyzer implements the password strength engine.
//
// An analysis runs four independent checks over the password and combines
// them into a single result:
//
//  1. Length: classifies whether the password is long enough
//  2. Complexity: detects lowercase, uppercase, digit and special characters
//  3. Patterns: detects common passwords and weak sequences
//  4. Scoring: adds and subtracts points, clamps to [0, 100] and derives
//     the strength label and suggestions
//
// # Conventions
//
// Length is measured in Unicode code points. Pattern checks compare the
// lowercased password; complexity checks look at the password as typed.
//
// # Concurrency
//
// An Analyzer holds only a read-only common-password set. Analyze performs
// no I/O and keeps no state between calls, so one Analyzer can serve any
// number of goroutines.
//
// # Usage
//
//	a := analyzer.New(analyzer.WithCommonPasswords(set))
//	result := a.Analyze(password)
//	fmt.Println(result.Score, result.Strength)
package analyzer
