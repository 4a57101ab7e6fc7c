// internal/app/app_test.go
package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestRunEndToEnd(t *testing.T) {
	base := t.TempDir()
	inDir := filepath.Join(base, "input_data")
	strDir := filepath.Join(base, "string_data")
	outDir := filepath.Join(base, "mapped_data")
	for _, d := range []string{inDir, strDir} {
		if err := os.Mkdir(d, 0755); err != nil {
			t.Fatal(err)
		}
	}

	cfgPath := filepath.Join(base, "groups.json")
	writeFile(t, cfgPath, `{"groups":[
		{"name":"direct","file_pattern":"^1_","prefix":"FGSG","taxid":"229533"},
		{"name":"ortho","file_pattern":"^6_","source_prefix":"FPSE","target_prefix":"FGSG","target_taxid":"229533"}
	]}`)
	writeFile(t, filepath.Join(strDir, "229533.protein.aliases.v12.0.txt"),
		"229533.p1\tFGSG_00001\n229533.p2\tFGSG_00002\nbad_line_no_tab\n")
	writeFile(t, filepath.Join(inDir, "1_study.tsv"),
		"gene\tfc\nfgsg_00001\t2.0\nFGSG_99999\t1.1\n")
	writeFile(t, filepath.Join(inDir, "6_study.tsv"),
		"gene\nFPSE_00001\n")

	var out, errBuf bytes.Buffer
	code := Run([]string{
		"--config", cfgPath,
		"--input", inDir,
		"--string-dir", strDir,
		"--output", outDir,
		"--quiet",
	}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errBuf.String())
	}

	direct, err := os.ReadFile(filepath.Join(outDir, "mapped_1_study.tsv"))
	if err != nil {
		t.Fatalf("direct output: %v", err)
	}
	wantDirect := "gene\tfc\tstring_id\nfgsg_00001\t2.0\t229533.p1\nFGSG_99999\t1.1\t\n"
	if string(direct) != wantDirect {
		t.Fatalf("direct output:\n%q\nwant:\n%q", direct, wantDirect)
	}

	ortho, err := os.ReadFile(filepath.Join(outDir, "mapped_ortholog_6_study.tsv"))
	if err != nil {
		t.Fatalf("ortholog output: %v", err)
	}
	if !strings.Contains(string(ortho), "FPSE_00001\t229533.p1") {
		t.Fatalf("ortholog output:\n%q", ortho)
	}

	summary := out.String()
	for _, want := range []string{"SUMMARY BY STUDY", "direct:", "ortho:", "TOTAL:"} {
		if !strings.Contains(summary, want) {
			t.Fatalf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestRunUsageError(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := Run(nil, &out, &errBuf); code != 2 {
		t.Fatalf("missing --config: exit %d", code)
	}
	if !strings.Contains(errBuf.String(), "--config") {
		t.Fatalf("stderr = %q", errBuf.String())
	}
}

func TestRunBadConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "groups.json")
	writeFile(t, cfgPath, `{"groups":[]}`)
	var out, errBuf bytes.Buffer
	if code := Run([]string{"--config", cfgPath}, &out, &errBuf); code != 2 {
		t.Fatalf("empty config: exit %d", code)
	}
}

func TestRunVersion(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := Run([]string{"--version"}, &out, &errBuf); code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out.String(), "genemap version") {
		t.Fatalf("stdout = %q", out.String())
	}
}

func TestRunHelp(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := Run([]string{"-h"}, &out, &errBuf); code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out.String(), "Usage of genemap") {
		t.Fatalf("stdout = %q", out.String())
	}
}
