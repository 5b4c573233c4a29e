package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Browse struct {
		DefaultSort string `yaml:"default_sort" json:"default_sort"` // date | compatibility
		PageLimit   int    `yaml:"page_limit" json:"page_limit"`
	} `yaml:"browse" json:"browse"`

	Cleanup struct {
		RetentionMonths int `yaml:"retention_months" json:"retention_months"`
		IntervalMinutes int `yaml:"interval_minutes" json:"interval_minutes"`
	} `yaml:"cleanup" json:"cleanup"`

	Limits struct {
		ReqPerSec float64 `yaml:"req_per_sec" json:"req_per_sec"`
		Burst     int     `yaml:"burst" json:"burst"`
	} `yaml:"limits" json:"limits"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

// Default is what a fresh install runs with before any config file exists.
func Default() Config {
	var cfg Config
	cfg.App.Port = 38472
	cfg.App.DataDir = "."
	cfg.Browse.DefaultSort = "date"
	cfg.Browse.PageLimit = 200
	cfg.Cleanup.RetentionMonths = 3
	cfg.Cleanup.IntervalMinutes = 60
	cfg.Limits.ReqPerSec = 50
	cfg.Limits.Burst = 100
	return cfg
}
