package logger

import (
	"os"

	"djp.chapter42.de/taskstarter/internal/data"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	Log   *zap.Logger = zap.NewNop()
	level             = zap.NewAtomicLevel()
)

func InitLogger(debug bool, logCfg data.LogConfig) {
	var logEncoding zapcore.Encoder

	encCfg := zapcore.EncoderConfig{
		MessageKey:   "msg",
		LevelKey:     "level",
		TimeKey:      "time",
		CallerKey:    "caller",
		EncodeLevel:  zapcore.LowercaseLevelEncoder,
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}

	SetDebug(debug)
	if debug {
		logEncoding = zapcore.NewConsoleEncoder(encCfg)
	} else {
		logEncoding = zapcore.NewJSONEncoder(encCfg)
	}

	sinks := []zapcore.WriteSyncer{zapcore.Lock(os.Stdout)}
	if logCfg.File != "" {
		sinks = append(sinks, zapcore.AddSync(&lumberjack.Logger{
			Filename:   logCfg.File,
			MaxSize:    logCfg.MaxSizeMB,
			MaxBackups: logCfg.MaxBackups,
			MaxAge:     logCfg.MaxAgeDays,
			Compress:   logCfg.Compress,
		}))
	}

	core := zapcore.NewCore(logEncoding, zapcore.NewMultiWriteSyncer(sinks...), level)
	Log = zap.New(core, zap.AddCaller(), zap.ErrorOutput(zapcore.Lock(os.Stderr)))
}

// SetDebug schaltet das Log-Level zur Laufzeit um.
func SetDebug(debug bool) {
	if debug {
		level.SetLevel(zap.DebugLevel)
	} else {
		level.SetLevel(zap.InfoLevel)
	}
}

func IsDebug() bool {
	return level.Enabled(zap.DebugLevel)
}
