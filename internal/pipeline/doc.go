// Package pipeline streams FASTA records through a pool of compression
// workers and calls a visit callback with each compressed record.
//
// One goroutine reads, Threads goroutines compress, one collector visits.
// Completion order is not input order; callers that care about ordering
// must sort downstream.
package pipeline
