// Package model defines the data structures shared by the password analyzer,
// the batch processor and the report writers.
//
// This package contains the following main types:
//   - AnalysisResult: The outcome of analyzing a single password
//   - LengthVerdict and ComplexityFlags: The outputs of the individual checks
//   - Strength: The qualitative label derived from a score
//   - BatchReport: The aggregated outcome of analyzing many passwords
//
// Models live in their own package so that analyzer, batch and report can
// all depend on them without import cycles. None of these types ever carry
// the analyzed password itself.
package model
