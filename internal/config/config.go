package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Endpoints []EndpointConfig `yaml:"endpoints"`
	Harvest   HarvestConfig    `yaml:"harvest"`
	Extract   ExtractConfig    `yaml:"extract"`
	State     StateConfig      `yaml:"state"`
	Glossary  GlossaryConfig   `yaml:"glossary"`
	Report    ReportConfig     `yaml:"report"`
	Publish   PublishConfig    `yaml:"publish"`
	LogLevel  string           `yaml:"log_level"`
}

// EndpointConfig describes one OAI-PMH repository to harvest.
type EndpointConfig struct {
	Key     string `yaml:"key"`
	Name    string `yaml:"name"`
	BaseURL string `yaml:"base_url"`
}

type HarvestConfig struct {
	DefaultFromDate string        `yaml:"default_from_date"`
	RequestDelay    time.Duration `yaml:"request_delay"`
	Timeout         time.Duration `yaml:"timeout"`
	Retry           RetryConfig   `yaml:"retry"`
}

type RetryConfig struct {
	MaxRetries     int           `yaml:"max_retries"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

type ExtractConfig struct {
	MinFrequency int `yaml:"min_frequency"`
	SampleLimit  int `yaml:"sample_limit"`
	Workers      int `yaml:"workers"`
}

// StateConfig selects the watermark backend: "file" (default) or "postgres".
type StateConfig struct {
	Backend  string         `yaml:"backend"`
	Path     string         `yaml:"path"`
	Database DatabaseConfig `yaml:"database"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type GlossaryConfig struct {
	Path string `yaml:"path"`
}

type ReportConfig struct {
	Output string `yaml:"output"`
}

// PublishConfig wires the optional candidate publisher. Publishing is
// disabled while URL is empty.
type PublishConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if len(c.Endpoints) == 0 {
		c.Endpoints = []EndpointConfig{
			{Key: "ut", Name: "University of Tartu", BaseURL: "https://dspace.ut.ee/oai/request"},
			{Key: "taltech", Name: "TalTech", BaseURL: "https://digikogu.taltech.ee/oai/request"},
			{Key: "tlu", Name: "Tallinn University", BaseURL: "https://www.etera.ee/oai"},
		}
	}
	if c.Harvest.DefaultFromDate == "" {
		c.Harvest.DefaultFromDate = "2015-01-01"
	}
	if c.Harvest.RequestDelay == 0 {
		c.Harvest.RequestDelay = 2 * time.Second
	}
	if c.Harvest.Timeout == 0 {
		c.Harvest.Timeout = 30 * time.Second
	}
	if c.Harvest.Retry.MaxRetries == 0 {
		c.Harvest.Retry.MaxRetries = 3
	}
	if c.Harvest.Retry.InitialBackoff == 0 {
		c.Harvest.Retry.InitialBackoff = 2 * time.Second
	}
	if c.Harvest.Retry.MaxBackoff == 0 {
		c.Harvest.Retry.MaxBackoff = 60 * time.Second
	}
	if c.Extract.MinFrequency == 0 {
		c.Extract.MinFrequency = 3
	}
	if c.Extract.SampleLimit == 0 {
		c.Extract.SampleLimit = 3
	}
	if c.State.Backend == "" {
		c.State.Backend = "file"
	}
	if c.State.Path == "" {
		c.State.Path = "data/harvest_state.json"
	}
	if c.Glossary.Path == "" {
		c.Glossary.Path = "data/terms.yml"
	}
	if c.Report.Output == "" {
		c.Report.Output = "data/candidate_terms.yml"
	}
	if c.Publish.Exchange == "" {
		c.Publish.Exchange = "term_harvester"
	}
	if c.Publish.RoutingKey == "" {
		c.Publish.RoutingKey = "candidates"
	}
	if c.Publish.QueueName == "" {
		c.Publish.QueueName = "glossary_candidates"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
