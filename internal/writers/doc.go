// Package writers serializes compressed records and their hodeco maps.
//
// Design:
//   • The record writer goroutine owns all output: FASTA to the primary
//     stream, hodeco maps through a MapEncoder side channel, paired per record.
//   • Map formats live in a registry; encoder files register in init().
//   • Core stays domain-only; Pipeline stays orchestration-only.
package writers
