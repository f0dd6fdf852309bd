package api

// JunctionPairV1 is the stable schema for exon-junction annotations.
// Left/right coordinates follow the primer3 convention of the input.
type JunctionPairV1 struct {
	ID               string `json:"id"`
	LeftSeq          string `json:"left_seq"`
	RightSeq         string `json:"right_seq"`
	LeftStart        int    `json:"left_start"`
	LeftLength       int    `json:"left_length"`
	RightStart       int    `json:"right_start"`
	RightLength      int    `json:"right_length"`
	ProductSize      int    `json:"product_size,omitempty"`
	FwdSpansJunction bool   `json:"fwd_spans_junction"`
	RevSpansJunction bool   `json:"rev_spans_junction"`
	AtJunction       bool   `json:"at_junction"`
}
