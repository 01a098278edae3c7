package logx

import (
	"context"

	"ZombieApocalypse/modules/kit/tracex"

	"go.uber.org/zap"
)

// ZapLogger 把 *zap.Logger 适配为 Logger；零值和 nil 接收者都等价于 Nop。
type ZapLogger struct {
	logger *zap.Logger
}

func NewZapLogger(l *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: l}
}

func (z *ZapLogger) zap() *zap.Logger {
	if z == nil || z.logger == nil {
		return zap.NewNop()
	}
	return z.logger
}

// WithContext 挂上 ctx 里的 trace_id/span_id；ctx 里没有时原样返回。
func (z *ZapLogger) WithContext(ctx context.Context) Logger {
	var fields []zap.Field
	if tid, ok := tracex.TraceIDFrom(ctx); ok {
		fields = append(fields, zap.String("trace_id", tid))
	}
	if sid, ok := tracex.SpanIDFrom(ctx); ok {
		fields = append(fields, zap.String("span_id", sid))
	}
	return z.With(fields...)
}

// With 返回带固定字段的子 logger，例如驱动挂上 order。
func (z *ZapLogger) With(fields ...zap.Field) Logger {
	if len(fields) == 0 {
		return &ZapLogger{logger: z.zap()}
	}
	return &ZapLogger{logger: z.zap().With(fields...)}
}

func (z *ZapLogger) Debug(msg string, fields ...zap.Field) { z.zap().Debug(msg, fields...) }

func (z *ZapLogger) Info(msg string, fields ...zap.Field) { z.zap().Info(msg, fields...) }

func (z *ZapLogger) Warn(msg string, fields ...zap.Field) { z.zap().Warn(msg, fields...) }

func (z *ZapLogger) Error(msg string, fields ...zap.Field) { z.zap().Error(msg, fields...) }
