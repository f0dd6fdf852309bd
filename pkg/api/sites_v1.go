package api

// SiteHitV1 is the stable schema for vpcr-sites output.
type SiteHitV1 struct {
	SequenceID  string `json:"sequence_id"`
	Probe       string `json:"probe"`
	Orientation string `json:"orientation"` // "forward" | "reverse"
	SiteV1
	SourceFile string `json:"source_file,omitempty"`
}
