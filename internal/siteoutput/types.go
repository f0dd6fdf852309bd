// internal/siteoutput/types.go
package siteoutput

import "vpcr-core/primer"

// Hit is one binding site of the probe on one record.
type Hit struct {
	SourceFile  string
	SequenceID  string
	Probe       string
	Orientation primer.Orientation
	primer.Site
}

// TSVHeader is the header row for site text output.
const TSVHeader = "source_file\tsequence_id\tprobe\torientation\tstart\tend\tmm\tmm_3p\tsite_seq"
