// internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

// under reports whether path is root or one of its sub-packages.
func under(path, root string) bool {
	return path == root || strings.HasPrefix(path, root+"/")
}

var (
	apps    = []string{"vpcr/internal/app", "vpcr/internal/sitesapp", "vpcr/internal/junctionapp", "vpcr/internal/appcore", "vpcr/cmd"}
	clis    = []string{"vpcr/internal/cli", "vpcr/internal/sitescli", "vpcr/internal/junctioncli", "vpcr/internal/clibase"}
	outputs = []string{"vpcr/internal/output", "vpcr/internal/siteoutput", "vpcr/internal/junctionoutput"}
)

func join(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.."
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"vpcr/internal/pipeline": join(apps, clis, outputs, []string{"vpcr/internal/writers"}),
		"vpcr/internal/writers":  join(apps, clis, []string{"vpcr/internal/pipeline"}),
		"vpcr/pkg/api":           join(apps, clis, outputs, []string{"vpcr/internal"}),
	}
	for _, o := range outputs {
		bans[o] = join(apps, clis, []string{"vpcr/internal/pipeline", "vpcr/internal/writers"})
	}
	for _, c := range clis {
		bans[c] = join(apps, outputs[1:], []string{"vpcr/internal/pipeline", "vpcr/internal/writers"})
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "vpcr/") {
			continue
		}
		forbidden, ok := bans[p.ImportPath]
		if !ok {
			continue
		}
		for _, dep := range p.Imports {
			for _, ban := range forbidden {
				if under(dep, ban) {
					violations = append(violations, p.ImportPath+" → "+dep)
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
