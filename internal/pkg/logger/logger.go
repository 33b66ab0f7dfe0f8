package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Zap adapts a zap logger to ports.Logger.
type Zap struct {
	log *zap.SugaredLogger
}

// New builds a logger. When verbose is false every call is discarded; when
// true, development-formatted entries go to stderr so stdout stays clean for
// completion scripts and profile output.
func New(verbose bool) *Zap {
	if !verbose {
		return NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	l, err := cfg.Build()
	if err != nil {
		return NewNop()
	}
	return &Zap{log: l.Sugar()}
}

// Wrap adapts an existing zap logger.
func Wrap(l *zap.Logger) *Zap {
	return &Zap{log: l.Sugar()}
}

// NewNop returns a logger that drops everything.
func NewNop() *Zap {
	return Wrap(zap.NewNop())
}

func (l *Zap) Debug(msg string, fields map[string]interface{}) {
	l.log.Debugw(msg, flatten(fields)...)
}

func (l *Zap) Info(msg string, fields map[string]interface{}) {
	l.log.Infow(msg, flatten(fields)...)
}

func (l *Zap) Warn(msg string, fields map[string]interface{}) {
	l.log.Warnw(msg, flatten(fields)...)
}

func (l *Zap) Error(msg string, err error, fields map[string]interface{}) {
	l.log.Errorw(msg, append(flatten(fields), zap.Error(err))...)
}

func flatten(fields map[string]interface{}) []interface{} {
	kv := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		kv = append(kv, k, v)
	}
	return kv
}
