// internal/cliutil/cliutil.go
package cliutil

import (
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrNoInputMatched is wrapped when a glob positional matches nothing.
var ErrNoInputMatched = errors.New("no input matched")

// isBoolFlag reports whether the named flag takes no value.
func isBoolFlag(fs *flag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	if f == nil {
		return false
	}
	bf, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && bf.IsBoolFlag()
}

// SplitFlagsAndPositionals separates flag tokens from positionals so flags
// may follow file names. '-' is a positional (stdin); everything after '--'
// is positional. Use before fs.Parse(flagArgs).
func SplitFlagsAndPositionals(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--":
			return flagArgs, append(posArgs, argv[i+1:]...)
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			posArgs = append(posArgs, arg)
		case strings.Contains(arg, "="):
			flagArgs = append(flagArgs, arg)
		default:
			flagArgs = append(flagArgs, arg)
			if !isBoolFlag(fs, strings.TrimLeft(arg, "-")) && i+1 < len(argv) {
				i++
				flagArgs = append(flagArgs, argv[i])
			}
		}
	}
	return flagArgs, posArgs
}

// ExpandPositionals expands globs among path positionals, keeping order and
// dropping repeats of the same path.
func ExpandPositionals(posArgs []string) ([]string, error) {
	var out []string
	seen := map[string]bool{}
	add := func(p string) {
		if p != "-" && seen[p] {
			return
		}
		seen[p] = true
		out = append(out, p)
	}
	for _, a := range posArgs {
		if a == "-" || !strings.ContainsAny(a, "*?[") {
			add(a)
			continue
		}
		m, err := filepath.Glob(a)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", a, err)
		}
		if len(m) == 0 {
			return nil, fmt.Errorf("%w %q", ErrNoInputMatched, a)
		}
		for _, p := range m {
			add(p)
		}
	}
	return out, nil
}
