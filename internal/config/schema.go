package config

import "github.com/gyaneshwarpardhi/loginsight/internal/dashboard"

// Config is the top-level YAML structure.
type Config struct {
	Version   string        `yaml:"version" json:"version"`
	Dataset   DatasetConf   `yaml:"dataset" json:"dataset"`
	Dashboard DashboardConf `yaml:"dashboard" json:"dashboard"`
	Export    ExportConf    `yaml:"export" json:"export"`
	Store     StoreConf     `yaml:"store" json:"-"`
	HTTP      HTTPConf      `yaml:"http" json:"http"`
}

// DatasetConf says where the login export lives. It is read once at startup.
type DatasetConf struct {
	Source   string `yaml:"source" json:"source"` // local path or s3://bucket/key
	Timezone string `yaml:"timezone" json:"timezone"`
	S3       S3Conf `yaml:"s3" json:"s3"`
}

type S3Conf struct {
	Region   string `yaml:"region" json:"region"`
	Endpoint string `yaml:"endpoint" json:"endpoint"`
}

// DashboardConf holds the top-N defaults. It can be hot-reloaded.
type DashboardConf struct {
	TopPrograms         int `yaml:"top_programs" json:"top_programs"`
	TopProgramsPlatform int `yaml:"top_programs_platform" json:"top_programs_platform"`
	TopProfessors       int `yaml:"top_professors" json:"top_professors"`
	TopHeatmap          int `yaml:"top_heatmap" json:"top_heatmap"`
	MaxTopN             int `yaml:"max_top_n" json:"max_top_n"`
}

// Defaults converts the block into view defaults.
func (d DashboardConf) Defaults() dashboard.Defaults {
	return dashboard.Defaults{
		TopPrograms:         d.TopPrograms,
		TopProgramsPlatform: d.TopProgramsPlatform,
		TopProfessors:       d.TopProfessors,
		TopHeatmap:          d.TopHeatmap,
		MaxTopN:             d.MaxTopN,
	}
}

// ExportConf tunes the snapshot export worker pool.
type ExportConf struct {
	Workers    int `yaml:"workers" json:"workers"`
	QueueDepth int `yaml:"queue_depth" json:"queue_depth"`
	TimeoutMs  int `yaml:"timeout_ms" json:"timeout_ms"`
}

// StoreConf selects the snapshot store. An empty driver disables snapshots.
type StoreConf struct {
	Driver string `yaml:"driver"` // postgres | sqlite
	DSN    string `yaml:"dsn"`
	Schema string `yaml:"schema"`
}

type HTTPConf struct {
	CORSOrigins []string `yaml:"cors_origins" json:"cors_origins"`
}
