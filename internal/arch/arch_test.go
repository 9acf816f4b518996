// ./internal/arch/arch_test.go
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
}

func TestImportBoundaries(t *testing.T) {
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go tool not on PATH")
	}
	cmd := exec.Command("go", "list", "-json", "revcomp/...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	// dna is a leaf: no module imports and no third-party imports.
	leaf := "revcomp/internal/dna"
	bans := map[string][]string{
		"revcomp/internal/writers": {
			"revcomp/internal/cli", "revcomp/internal/shell",
			"revcomp/internal/config", "revcomp/internal/logger", "revcomp/cmd/",
		},
		"revcomp/internal/shell": {
			"revcomp/internal/cli", "revcomp/internal/config",
			"revcomp/internal/logger", "revcomp/cmd/",
		},
		"revcomp/internal/config": {
			"revcomp/internal/cli", "revcomp/internal/shell",
			"revcomp/internal/writers", "revcomp/cmd/",
		},
		"revcomp/pkg/": {
			"revcomp/internal/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		imp := p.ImportPath
		if imp == leaf {
			for _, dep := range p.Imports {
				if strings.HasPrefix(dep, "revcomp/") || strings.Contains(strings.SplitN(dep, "/", 2)[0], ".") {
					violations = append(violations, imp+" → "+dep)
				}
			}
			continue
		}
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
