// Command ggcor runs pairwise procrustes tests between two CSV tables,
// driven by a TOML config, and writes the tidy result CSV.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/Bmdistef/ggcor/crosstest"
	"github.com/Bmdistef/ggcor/tabular"
)

func main() {
	configPath := flag.String("config", "ggcor.toml", "path to the TOML config")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !*verbose {
		log = log.Level(zerolog.InfoLevel)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Error().Err(err).Str("config", *configPath).Msg("ggcor failed")
		os.Exit(1)
	}
	log.Debug().Str("spec", cfg.specCSV).Str("env", cfg.envCSV).Msg("config loaded")

	if err := runWith(cfg); err != nil {
		log.Error().Err(err).Msg("ggcor failed")
		os.Exit(1)
	}
	log.Info().Msg("done")
}

// runWith executes the configured pipeline: read both tables, run the
// cross tests, write the tidy CSV.
func runWith(cfg runConfig) error {
	spec, err := readTable(cfg.specCSV)
	if err != nil {
		return err
	}
	env, err := readTable(cfg.envCSV)
	if err != nil {
		return err
	}

	frame, err := crosstest.Run(spec, env, cfg.opts...)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if cfg.output != "" {
		f, err := os.Create(cfg.output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return frame.WriteCSV(out)
}

func readTable(path string) (*tabular.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tabular.FromCSV(f, tabular.WithTrimCells())
}
