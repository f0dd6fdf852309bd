// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"vpcr/internal/version"
)

// Def returns the default value of a registered flag.
type Def func(flagName string) string

// UsageHeader installs a Usage() handler printing the banner and then body.
func UsageHeader(fs *flag.FlagSet, name, tagline string, body func(out io.Writer, def Def)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}
		fmt.Fprintf(out, "%s – %s\n\n", name, tagline)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		if body != nil {
			body(out, def)
		}
	}
}

// UsageCommon installs the Usage() handler of a FASTA-scanning tool.
// extra prints tool-specific sections (usage line, primer/probe blocks).
func UsageCommon(fs *flag.FlagSet, name string, formats string, extra func(out io.Writer, def Def)) {
	UsageHeader(fs, name, "in-silico PCR toolkit", func(out io.Writer, def Def) {
		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nSequences:")
		fmt.Fprintln(out, "  -s, --sequences file        FASTA file(s) (repeatable, .gz ok) or '-' for STDIN")
		fmt.Fprintln(out, "                              Positional arguments and globs are accepted too")
		fmt.Fprintf(out, "      --check-template        Skip records outside 50..200000 bp or >10%% N [%s]\n", def("check-template"))

		fmt.Fprintln(out, "\nMatching:")
		fmt.Fprintf(out, "  -m, --mismatches int        Max mismatches allowed per oligo [%s]\n", def("mismatches"))

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))

		PrintReportUsage(out, def, formats)
	})
}

// PrintReportUsage prints the Output and Miscellaneous blocks.
func PrintReportUsage(out io.Writer, def Def, formats string) {
	fmt.Fprintln(out, "\nOutput:")
	fmt.Fprintf(out, "  -o, --output string         Output: %s [%s]\n", formats, def("output"))
	fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))
	fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when nothing is found [%s]\n", def("no-match-exit-code"))

	fmt.Fprintln(out, "\nMiscellaneous:")
	fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
	fmt.Fprintf(out, "      --verbose               Print progress to stderr [%s]\n", def("verbose"))
	fmt.Fprintln(out, "      --examples              Show quickstart examples and exit")
	fmt.Fprintln(out, "  -v, --version               Print version and exit")
	fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
}
