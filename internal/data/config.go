package data

import "time"

type AppConfig struct {
	Port   string       `mapstructure:"port" yaml:"port"`
	Debug  bool         `mapstructure:"debug" yaml:"debug"`
	Redis  RedisConfig  `mapstructure:"redis" yaml:"redis"`
	Task   TaskConfig   `mapstructure:"task" yaml:"task"`
	Worker WorkerConfig `mapstructure:"worker" yaml:"worker"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	CORS   CORSConfig   `mapstructure:"cors" yaml:"cors"`
}

type RedisConfig struct {
	Addr        string        `mapstructure:"addr" yaml:"addr"`
	Password    string        `mapstructure:"password" yaml:"password,omitempty"`
	DB          int           `mapstructure:"db" yaml:"db"`
	DialTimeout time.Duration `mapstructure:"dial_timeout" yaml:"dial_timeout"`
}

// TaskConfig beschreibt den Task, den der Start-Endpunkt einreiht.
type TaskConfig struct {
	Queue    string        `mapstructure:"queue" yaml:"queue"`
	Name     string        `mapstructure:"name" yaml:"name"`
	Arg      int           `mapstructure:"arg" yaml:"arg"`
	MaxRetry int           `mapstructure:"max_retry" yaml:"max_retry"`
	Timeout  time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

type WorkerConfig struct {
	Concurrency int           `mapstructure:"concurrency" yaml:"concurrency"`
	Step        time.Duration `mapstructure:"step" yaml:"step"`
}

type LogConfig struct {
	File       string `mapstructure:"file" yaml:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins" yaml:"allow_origins"`
}
