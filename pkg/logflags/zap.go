package logflags

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(enabled bool) Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:      "timestamp",
		LevelKey:     "level",
		MessageKey:   "message",
		CallerKey:    "caller",
		EncodeLevel:  zapcore.CapitalLevelEncoder,
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}

	level := zapcore.ErrorLevel
	if enabled {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.NewMultiWriteSyncer(zapcore.AddSync(logOut)),
		level,
	)

	return zap.New(core, zap.AddCaller()).Sugar()
}

func HTTPLogger() Logger {
	return newLogger(http)
}

func ProbeLogger() Logger {
	return newLogger(probe)
}
