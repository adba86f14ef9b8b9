package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"djp.chapter42.de/taskstarter/internal/data"
	"djp.chapter42.de/taskstarter/internal/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	DefaultPort       string = "4224"
	DefaultConfigName string = "taskstarter.cfg"
	EnvPrefix         string = "TASKSTARTER"
)

var (
	Config *data.AppConfig
	Viper  *viper.Viper
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", DefaultPort)
	v.SetDefault("debug", false)

	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.dial_timeout", 5*time.Second)

	v.SetDefault("task.queue", "default")
	v.SetDefault("task.name", "example_task")
	v.SetDefault("task.arg", 10)
	v.SetDefault("task.max_retry", 3)
	v.SetDefault("task.timeout", 30*time.Minute)

	v.SetDefault("worker.concurrency", 10)
	v.SetDefault("worker.step", time.Second)

	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("log.compress", true)

	v.SetDefault("cors.allow_origins", []string{})
}

// New liefert eine vorbelegte Viper-Instanz. Ist cfgFile leer, wird
// taskstarter.cfg in /app/config und im Arbeitsverzeichnis gesucht.
func New(cfgFile string) *viper.Viper {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		// taskstarter.cfg und andere unbekannte Endungen werden als YAML gelesen.
		switch strings.TrimPrefix(filepath.Ext(cfgFile), ".") {
		case "yaml", "yml", "json", "toml":
		default:
			v.SetConfigType("yaml")
		}
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath("/app/config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load liest die Konfigurationsdatei ein. Eine fehlende Datei ist kein Fehler.
func Load(v *viper.Viper, log *zap.Logger) (*data.AppConfig, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Warn("Konfigurationsdatei nicht gefunden, verwende Standardwerte")
		} else {
			return nil, fmt.Errorf("fehler beim Lesen der Konfigurationsdatei: %w", err)
		}
	}

	return Decode(v)
}

func Decode(v *viper.Viper) (*data.AppConfig, error) {
	var cfg data.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("fehler beim Dekodieren der Konfiguration: %w", err)
	}
	if cfg.Task.Queue == "" {
		return nil, errors.New("task.queue darf nicht leer sein")
	}
	if cfg.Task.Name == "" {
		return nil, errors.New("task.name darf nicht leer sein")
	}
	if cfg.Worker.Concurrency < 1 {
		return nil, fmt.Errorf("worker.concurrency muss mindestens 1 sein, ist %d", cfg.Worker.Concurrency)
	}
	return &cfg, nil
}

func InitConfig(log *zap.Logger, cfgFile string) error {
	v := New(cfgFile)
	cfg, err := Load(v, log)
	if err != nil {
		return err
	}
	Viper = v
	Config = cfg
	return nil
}

// WatchDebug überwacht die Konfigurationsdatei und übernimmt Änderungen an
// "debug" ins Log-Level. Ohne Konfigurationsdatei passiert nichts.
func WatchDebug(v *viper.Viper) bool {
	if v == nil || v.ConfigFileUsed() == "" {
		return false
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		debug := v.GetBool("debug")
		logger.SetDebug(debug)
		logger.Log.Info("Konfiguration neu geladen:", zap.String("datei", e.Name), zap.String("op", e.Op.String()), zap.Bool("debug", debug))
	})
	v.WatchConfig()
	return true
}
