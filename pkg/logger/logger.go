package logger

import (
	"os"
	"path/filepath"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"freenotice/config"
)

// Logger zap 로거 래퍼
type Logger struct {
	*zap.Logger
}

// NewLogger 파일 출력 없이 로거를 생성한다.
func NewLogger(level string) *Logger {
	return NewLoggerWithConfig(level, config.LogFileConfig{})
}

// NewLoggerWithConfig 설정에 따라 로거를 생성한다.
// 파일 로그가 켜져 있으면 lumberjack으로 크기 기준 로테이션을 한다.
func NewLoggerWithConfig(level string, logFile config.LogFileConfig) *Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	enabler := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapLevel
	})

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.Lock(os.Stdout), enabler),
	}

	if logFile.Enabled && logFile.Path != "" {
		if err := os.MkdirAll(filepath.Dir(logFile.Path), 0755); err != nil {
			panic(err)
		}
		rotator := &lumberjack.Logger{
			Filename:   logFile.Path,
			MaxSize:    logFile.MaxSize,
			MaxBackups: logFile.MaxBackups,
			MaxAge:     logFile.MaxAge,
			Compress:   logFile.Compress,
			LocalTime:  true,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(rotator), enabler))
	}

	core := zapcore.NewTee(cores...)
	return &Logger{Logger: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))}
}

// Info 정보 로그
func (l *Logger) Info(msg string, fields ...interface{}) {
	l.Logger.Info(msg, toZapFields(fields...)...)
}

// Debug 디버그 로그
func (l *Logger) Debug(msg string, fields ...interface{}) {
	l.Logger.Debug(msg, toZapFields(fields...)...)
}

// Warn 경고 로그
func (l *Logger) Warn(msg string, fields ...interface{}) {
	l.Logger.Warn(msg, toZapFields(fields...)...)
}

// Error 오류 로그
func (l *Logger) Error(msg string, fields ...interface{}) {
	l.Logger.Error(msg, toZapFields(fields...)...)
}

// Fatal 치명적 오류 로그, 기록 후 프로세스를 종료한다.
func (l *Logger) Fatal(msg string, fields ...interface{}) {
	l.Logger.Fatal(msg, toZapFields(fields...)...)
}

// key-value 가변 인자를 zap 필드로 변환
func toZapFields(fields ...interface{}) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for i := 0; i < len(fields); i++ {
		switch f := fields[i].(type) {
		case error:
			zapFields = append(zapFields, zap.Error(f))
		case string:
			if i+1 < len(fields) {
				zapFields = append(zapFields, zap.Any(f, fields[i+1]))
				i++
			}
		default:
			zapFields = append(zapFields, zap.Any("field", f))
		}
	}
	return zapFields
}
