// core/primer/pair.go
package primer

// Pair is a forward/reverse primer set to amplify with.
type Pair struct {
	ID         string
	Forward    string // 5'→3', binds the given strand
	Reverse    string // 5'→3', binds the complementary strand
	MaxProduct int    // 0 = use the engine default
}
