package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Bmdistef/ggcor/crosstest"
	"github.com/Bmdistef/ggcor/ordination"
	"github.com/Bmdistef/ggcor/tabular"
)

// fileConfig is the TOML surface of the ggcor command.
type fileConfig struct {
	SpecCSV      string   `toml:"spec_csv"`
	EnvCSV       string   `toml:"env_csv"`
	Output       string   `toml:"output"` // empty = stdout
	Method       string   `toml:"method"`
	Permutations int      `toml:"permutations"`
	Seed         int64    `toml:"seed"`
	Groups       []string `toml:"groups"`     // inline grouping vector
	GroupFile    string   `toml:"group_file"` // one label per line; overrides groups

	Spec sideConfig `toml:"spec"`
	Env  sideConfig `toml:"env"`
}

// sideConfig configures one side of the comparison (spec or env).
type sideConfig struct {
	Pre    string        `toml:"pre"`  // ordination transform name
	Dims   int           `toml:"dims"` // axis cap for pca/pcoa; 0 = all
	Blocks []blockConfig `toml:"block"`
}

type blockConfig struct {
	Name    string   `toml:"name"`
	Columns []string `toml:"columns"`
}

// runConfig is the resolved configuration main executes.
type runConfig struct {
	specCSV string
	envCSV  string
	output  string
	opts    []crosstest.Option
}

// loadConfig decodes and resolves a TOML config file.
func loadConfig(path string) (runConfig, error) {
	var raw fileConfig
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return runConfig{}, fmt.Errorf("load config: %w", err)
	}
	if raw.SpecCSV == "" || raw.EnvCSV == "" {
		return runConfig{}, fmt.Errorf("config %s: spec_csv and env_csv are required", path)
	}

	cfg := runConfig{specCSV: raw.SpecCSV, envCSV: raw.EnvCSV, output: raw.Output}

	if bs := toBlocks(raw.Spec.Blocks); bs != nil {
		cfg.opts = append(cfg.opts, crosstest.WithSpecBlocks(bs))
	}
	if bs := toBlocks(raw.Env.Blocks); bs != nil {
		cfg.opts = append(cfg.opts, crosstest.WithEnvBlocks(bs))
	}
	if raw.Spec.Pre != "" {
		cfg.opts = append(cfg.opts, crosstest.WithSpecPre(raw.Spec.Pre, dimOpts(raw.Spec.Dims)...))
	}
	if raw.Env.Pre != "" {
		cfg.opts = append(cfg.opts, crosstest.WithEnvPre(raw.Env.Pre, dimOpts(raw.Env.Dims)...))
	}
	if raw.Method != "" {
		cfg.opts = append(cfg.opts, crosstest.WithMethod(raw.Method))
	}
	if raw.Permutations != 0 {
		cfg.opts = append(cfg.opts, crosstest.WithPermutations(raw.Permutations))
	}
	if raw.Seed != 0 {
		cfg.opts = append(cfg.opts, crosstest.WithSeed(raw.Seed))
	}

	groups := raw.Groups
	if raw.GroupFile != "" {
		fromFile, err := readGroupFile(raw.GroupFile)
		if err != nil {
			return runConfig{}, err
		}
		groups = fromFile
	}
	if groups != nil {
		cfg.opts = append(cfg.opts, crosstest.WithGroups(groups))
	}

	return cfg, nil
}

func toBlocks(bcs []blockConfig) tabular.Blocks {
	if len(bcs) == 0 {
		return nil
	}
	bs := make(tabular.Blocks, 0, len(bcs))
	for _, bc := range bcs {
		bs = append(bs, tabular.Block{Name: bc.Name, Columns: bc.Columns})
	}
	return bs
}

func dimOpts(dims int) []ordination.Option {
	if dims == 0 {
		return nil
	}
	return []ordination.Option{ordination.WithDims(dims)}
}

// readGroupFile reads a grouping vector: one label per line, blank lines
// and surrounding whitespace ignored.
func readGroupFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open group file: %w", err)
	}
	defer f.Close()

	var groups []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		label := strings.TrimSpace(sc.Text())
		if label == "" {
			continue
		}
		groups = append(groups, label)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read group file: %w", err)
	}
	return groups, nil
}
