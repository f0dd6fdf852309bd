package output

// Output format names shared by every tool.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatFASTA = "fasta"
)

// TSVHeader is the canonical header row for amplicon text/TSV output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "source_file\tsequence_id\texperiment_id\tstart\tend\tsize\t" +
	"fwd_start\tfwd_end\tfwd_mm\tfwd_3p_mm\trev_start\trev_end\trev_mm\trev_3p_mm"

// SeqColumn is appended to TSVHeader when product sequences are requested.
const SeqColumn = "seq"
