// Package pipeline streams FASTA records through a pool of workers and hands
// their results to a visit callback in input order.
//
// ForEachProduct is the amplicon flavour; the only contract it needs is
// Simulator (SimulateBatch), which keeps the engine swappable in tests.
package pipeline
