package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadConfigFull(t *testing.T) {
	dir := t.TempDir()

	path := writeFile(t, dir, "ggcor.toml", `
spec_csv = "spec.csv"
env_csv = "env.csv"
output = "out.csv"
method = "randtest"
permutations = 199
seed = 7
groups = ["a", "a", "b"]

[spec]
pre = "hellinger"
[[spec.block]]
name = "bugs"
columns = ["s1", "s2"]

[env]
pre = "pca"
dims = 2
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.specCSV != "spec.csv" || cfg.envCSV != "env.csv" {
		t.Fatalf("unexpected csv paths: %q %q", cfg.specCSV, cfg.envCSV)
	}
	if cfg.output != "out.csv" {
		t.Fatalf("unexpected output: %q", cfg.output)
	}
	// 1 spec blocks + 2 pre-transforms + method + permutations + seed + groups.
	if len(cfg.opts) != 7 {
		t.Fatalf("expected 7 crosstest options, got %d", len(cfg.opts))
	}
}

func TestLoadConfigMissingTables(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ggcor.toml", `method = "protest"`)

	if _, err := loadConfig(path); err == nil {
		t.Fatal("expected error for missing spec_csv/env_csv")
	}
}

func TestLoadConfigGroupFile(t *testing.T) {
	dir := t.TempDir()
	groupPath := writeFile(t, dir, "groups.txt", "north\nnorth\n\nsouth\n")
	path := writeFile(t, dir, "ggcor.toml", `
spec_csv = "spec.csv"
env_csv = "env.csv"
group_file = "`+strings.ReplaceAll(groupPath, `\`, `\\`)+`"
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.opts) != 1 {
		t.Fatalf("expected the groups option only, got %d options", len(cfg.opts))
	}
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	specPath := writeFile(t, dir, "spec.csv",
		"s1,s2\n1,0\n2,1\n3,3\n4,2\n5,5\n6,4\n")
	envPath := writeFile(t, dir, "env.csv",
		"ph,temp\n6.5,12\n6.8,14\n7.0,11\n7.2,16\n6.9,13\n7.4,18\n")
	outPath := filepath.Join(dir, "out.csv")
	cfgPath := writeFile(t, dir, "ggcor.toml", `
spec_csv = "`+strings.ReplaceAll(specPath, `\`, `\\`)+`"
env_csv = "`+strings.ReplaceAll(envPath, `\`, `\\`)+`"
output = "`+strings.ReplaceAll(outPath, `\`, `\\`)+`"
permutations = 49
seed = 3
`)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if err := runWith(cfg); err != nil {
		t.Fatalf("run: %v", err)
	}

	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if lines[0] != "spec,env,group,r,p_value,permutations" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
}
