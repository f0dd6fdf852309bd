// core/engine/engine.go
package engine

import (
	"bytes"
	"sort"
	"strings"

	"vpcr-core/primer"
)

// Config holds PCR simulation parameters.
type Config struct {
	MaxMM          int // max mismatches per primer site
	MaxProductSize int // largest amplicon kept (inclusive)
	HitCap         int // max sites kept per primer (0 = unlimited)
	Threads        int // matcher goroutines per scan (<=1 = serial)
}

// Engine runs PCR simulations with a given config.
type Engine struct {
	cfg Config
}

// New creates a new Engine.
func New(c Config) *Engine { return &Engine{cfg: c} }

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// Amplicon pairs a forward site with a downstream reverse site.
// Size is Reverse.End - Forward.Start + 1.
type Amplicon struct {
	Forward primer.Site
	Reverse primer.Site
	Size    int
}

// RunVirtualPCR finds every amplicon the primer pair can produce on template
// with at most maxMM mismatches per primer and a product no longer than
// maxProductSize, ordered by size. Equal sizes keep enumeration order.
func RunVirtualPCR(template, fwd, rev string, maxMM, maxProductSize int) []Amplicon {
	e := New(Config{MaxMM: maxMM, MaxProductSize: maxProductSize})
	return e.Amplify([]byte(strings.ToUpper(template)), strings.ToUpper(fwd), strings.ToUpper(rev), maxProductSize)
}

// Amplify is RunVirtualPCR over an already upper-cased template using the
// engine's mismatch budget, hit cap and thread count.
func (e *Engine) Amplify(template []byte, fwd, rev string, maxProductSize int) []Amplicon {
	if len(template) == 0 || fwd == "" || rev == "" {
		return nil
	}
	rc := primer.RevComp([]byte(rev))

	fwdSites := e.find(template, []byte(fwd), primer.Forward)
	if len(fwdSites) == 0 {
		return nil
	}
	revSites := e.find(template, rc, primer.Reverse)
	if len(revSites) == 0 {
		return nil
	}
	return join(fwdSites, revSites, maxProductSize)
}

func (e *Engine) find(template, probe []byte, o primer.Orientation) []primer.Site {
	var sites []primer.Site
	if e.cfg.Threads > 1 {
		sites = primer.FindSitesParallel(template, probe, e.cfg.MaxMM, o, e.cfg.Threads)
	} else {
		sites = primer.FindSites(template, probe, e.cfg.MaxMM, o)
	}
	if hc := e.cfg.HitCap; hc > 0 && len(sites) > hc {
		sites = sites[:hc]
	}
	return sites
}

// join cross-combines forward and reverse sites (forward-major order), keeps
// pairs whose reverse site ends downstream of the forward start and whose size
// fits, then stable-sorts by size.
func join(fwdSites, revSites []primer.Site, maxProductSize int) []Amplicon {
	var out []Amplicon
	for _, f := range fwdSites {
		for _, r := range revSites {
			if f.Start >= r.End {
				continue
			}
			size := r.End - f.Start + 1
			if size > maxProductSize {
				continue
			}
			out = append(out, Amplicon{Forward: f, Reverse: r, Size: size})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Size < out[j].Size })
	return out
}

// Simulate runs one primer pair against one record and tags the amplicons.
// A pair-level MaxProduct overrides the engine default when > 0.
func (e *Engine) Simulate(seqID string, seq []byte, p primer.Pair) []Product {
	maxL := p.MaxProduct
	if maxL <= 0 {
		maxL = e.cfg.MaxProductSize
	}
	if hasLower(seq) {
		seq = bytes.ToUpper(seq)
	}
	amps := e.Amplify(seq, strings.ToUpper(p.Forward), strings.ToUpper(p.Reverse), maxL)
	if len(amps) == 0 {
		return nil
	}
	out := make([]Product, len(amps))
	for i, a := range amps {
		out[i] = Product{
			ExperimentID: p.ID,
			SequenceID:   seqID,
			FwdPrimer:    p.Forward,
			RevPrimer:    p.Reverse,
			Amplicon:     a,
		}
	}
	return out
}

// SimulateBatch runs every pair against one record, pairs in input order.
func (e *Engine) SimulateBatch(seqID string, seq []byte, pairs []primer.Pair) []Product {
	if len(pairs) == 0 {
		return nil
	}
	if hasLower(seq) {
		seq = bytes.ToUpper(seq)
	}
	var out []Product
	for _, p := range pairs {
		out = append(out, e.Simulate(seqID, seq, p)...)
	}
	return out
}

func hasLower(b []byte) bool {
	for _, c := range b {
		if 'a' <= c && c <= 'z' {
			return true
		}
	}
	return false
}
