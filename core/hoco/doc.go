// Package hoco implements homopolymer compression: every maximal run of
// identical adjacent symbols collapses to a single symbol. The optional
// hodeco (homopolymer-decompression) map records the start offset of each
// run so the collapse can be inverted exactly.
//
// The package is domain-only. It never imports app, writers, cli, or
// pipeline.
package hoco
