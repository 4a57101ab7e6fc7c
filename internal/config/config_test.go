// internal/config/config_test.go
package config

import (
	"strings"
	"testing"
)

const sample = `{
  "string_version": "12.0",
  "groups": [
    {"name": "F_graminearum", "file_pattern": "^[12]_", "prefix": "FGSG", "taxid": "229533"},
    {"name": "FPSE_to_FGSG", "file_pattern": "^6_", "source_prefix": "FPSE", "target_prefix": "FGSG", "target_taxid": "229533"}
  ]
}`

func TestParseSample(t *testing.T) {
	c, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(c.Groups) != 2 {
		t.Fatalf("want 2 groups, got %d", len(c.Groups))
	}
	direct, ortho := &c.Groups[0], &c.Groups[1]
	if direct.Ortholog() || !ortho.Ortholog() {
		t.Fatalf("mode detection wrong: %v %v", direct.Ortholog(), ortho.Ortholog())
	}
	if direct.TableTaxID() != "229533" || ortho.TableTaxID() != "229533" {
		t.Fatal("TableTaxID wrong")
	}
	if !direct.Match("1_study.xlsx") || direct.Match("3_study.xlsx") {
		t.Fatal("pattern match wrong")
	}
}

func TestPatternAnchoredAtStart(t *testing.T) {
	c, err := Parse([]byte(`{"groups":[{"name":"g","file_pattern":"6_","source_prefix":"FPSE","target_prefix":"FGSG","target_taxid":"229533"}]}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	g := &c.Groups[0]
	if !g.Match("6_study.xlsx") {
		t.Fatal("should match at start")
	}
	if g.Match("x6_study.xlsx") {
		t.Fatal("pattern must not match mid-name")
	}
}

func TestDefaultStringVersion(t *testing.T) {
	c, err := Parse([]byte(`{"groups":[{"name":"g","file_pattern":"^1_","prefix":"FGSG","taxid":"229533"}]}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := c.AliasFile("229533"); got != "229533.protein.aliases.v12.0.txt" {
		t.Fatalf("AliasFile = %q", got)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"no groups", `{"groups":[]}`, "no mapping groups"},
		{"unnamed", `{"groups":[{"file_pattern":"^1_","prefix":"P","taxid":"1"}]}`, "no name"},
		{"duplicate", `{"groups":[{"name":"g","file_pattern":"^1_","prefix":"P","taxid":"1"},{"name":"g","file_pattern":"^2_","prefix":"P","taxid":"1"}]}`, "duplicate"},
		{"no pattern", `{"groups":[{"name":"g","prefix":"P","taxid":"1"}]}`, "file_pattern"},
		{"bad regex", `{"groups":[{"name":"g","file_pattern":"^[1_","prefix":"P","taxid":"1"}]}`, "bad file_pattern"},
		{"mixed modes", `{"groups":[{"name":"g","file_pattern":"^1_","prefix":"P","taxid":"1","source_prefix":"S","target_prefix":"T","target_taxid":"2"}]}`, "mixes"},
		{"incomplete", `{"groups":[{"name":"g","file_pattern":"^1_","taxid":"1"}]}`, "needs"},
	}
	for _, c := range cases {
		_, err := Parse([]byte(c.doc))
		if err == nil || !strings.Contains(err.Error(), c.want) {
			t.Fatalf("%s: err = %v, want substring %q", c.name, err, c.want)
		}
	}
}
