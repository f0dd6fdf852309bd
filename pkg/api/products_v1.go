// pkg/api/products_v1.go
package api

// SiteV1 is one primer/probe binding site. Coordinates are 1-based inclusive.
type SiteV1 struct {
	Start   int    `json:"start"`
	End     int    `json:"end"`
	MM      int    `json:"mm"`
	MM3p    int    `json:"mm_3p"`
	SiteSeq string `json:"site_seq,omitempty"`
}

// AmpliconV1 is the stable JSON/JSONL schema for virtual PCR products.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type AmpliconV1 struct {
	ExperimentID string `json:"experiment_id"`
	SequenceID   string `json:"sequence_id"`
	Start        int    `json:"start"`
	End          int    `json:"end"`
	Size         int    `json:"size"`
	FwdPrimer    string `json:"fwd_primer"`
	RevPrimer    string `json:"rev_primer"`
	Fwd          SiteV1 `json:"fwd"`
	Rev          SiteV1 `json:"rev"`
	Seq          string `json:"seq,omitempty"`
	SourceFile   string `json:"source_file,omitempty"`
}
