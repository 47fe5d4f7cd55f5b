package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the pipeline configuration loaded from config.yaml.
type Config struct {
	Paths     Paths             `yaml:"paths"`
	HeaderRow int               `yaml:"header_row"`
	Columns   map[string]string `yaml:"columns"`
	Drop      DropRules         `yaml:"drop"`
	Match     MatchRules        `yaml:"match"`
}

// Paths declares the file artifacts each stage reads and writes.
type Paths struct {
	ExcelInput      string `yaml:"excel_input"`
	RawCSV          string `yaml:"raw_csv"`
	StandardizedCSV string `yaml:"standardized_csv"`
	MergedCSV       string `yaml:"merged_csv"`
	RowMapCSV       string `yaml:"row_map_csv"`
	TransactionsCSV string `yaml:"transactions_csv"`
	RegistryCSV     string `yaml:"registry_csv"`
	QualityCSV      string `yaml:"quality_csv"`
}

// DropRules controls rows discarded during standardization. The source
// workbook carries a trailing totals row that must not become an investor.
type DropRules struct {
	Strategy string `yaml:"strategy"` // "last_row" or empty
}

// MatchRules carries the duplicate-detection policy so alternate matching
// rules can be configured without touching cluster or merge logic.
type MatchRules struct {
	MinAgreements int `yaml:"min_agreements"`
}

// Load reads config.yaml from path. Missing optional sections fall back to
// defaults; a missing file is an error since the pipeline cannot guess paths.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{HeaderRow: 1}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.HeaderRow < 1 {
		cfg.HeaderRow = 1
	}
	if cfg.Match.MinAgreements == 0 {
		cfg.Match.MinAgreements = 3
	}
	applyPathDefaults(&cfg.Paths)
	return cfg, nil
}

func applyPathDefaults(p *Paths) {
	if p.RawCSV == "" {
		p.RawCSV = "out/raw.csv"
	}
	if p.StandardizedCSV == "" {
		p.StandardizedCSV = "out/standardized.csv"
	}
	if p.MergedCSV == "" {
		p.MergedCSV = "out/merged.csv"
	}
	if p.RowMapCSV == "" {
		p.RowMapCSV = "out/row_map.csv"
	}
	if p.RegistryCSV == "" {
		p.RegistryCSV = "out/registry.csv"
	}
	if p.QualityCSV == "" {
		p.QualityCSV = "out/quality_report.csv"
	}
}
