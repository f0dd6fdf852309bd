// Package junction classifies designed primers against exon–exon junctions.
//
// Exon intervals are 1-based inclusive. A junction is the End of every exon
// but the last; primer spans use the designer's 0-based half-open convention,
// so a junction j lies between template offsets j-1 and j.
package junction
