package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string // debug | info | warn | error
	Mode         string // development | production
	Encoding     string // console | json
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds the process-wide logger from config.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}

	encoding := cfg.Encoding
	if encoding == "" {
		encoding = "console"
	}

	var encoderCfg zapcore.EncoderConfig
	if cfg.Mode == "production" {
		encoderCfg = zap.NewProductionEncoderConfig()
	} else {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	}
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && encoding == "console" {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var encoder zapcore.Encoder
	if encoding == "json" {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level)
	l := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	return &zapLogger{sugar: l.Sugar()}
}

func (z *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if id := RequestIDFromContext(ctx); id != "" {
		return z.sugar.With("request_id", id)
	}
	return z.sugar
}

func (z *zapLogger) Debug(ctx context.Context, args ...any) { z.with(ctx).Debug(args...) }
func (z *zapLogger) Debugf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Debugf(format, args...)
}
func (z *zapLogger) Info(ctx context.Context, args ...any) { z.with(ctx).Info(args...) }
func (z *zapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.with(ctx).Infof(format, args...)
}
func (z *zapLogger) Warn(ctx context.Context, args ...any) { z.with(ctx).Warn(args...) }
func (z *zapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Warnf(format, args...)
}
func (z *zapLogger) Error(ctx context.Context, args ...any) { z.with(ctx).Error(args...) }
func (z *zapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Errorf(format, args...)
}
func (z *zapLogger) DPanic(ctx context.Context, args ...any) { z.with(ctx).DPanic(args...) }
func (z *zapLogger) DPanicf(ctx context.Context, format string, args ...any) {
	z.with(ctx).DPanicf(format, args...)
}
func (z *zapLogger) Panic(ctx context.Context, args ...any) { z.with(ctx).Panic(args...) }
func (z *zapLogger) Panicf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Panicf(format, args...)
}
func (z *zapLogger) Fatal(ctx context.Context, args ...any) { z.with(ctx).Fatal(args...) }
func (z *zapLogger) Fatalf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Fatalf(format, args...)
}
