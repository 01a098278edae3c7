package logs

import (
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ZombieApocalypse/internal/shared/config"
)

var (
	// logger 可能在配置热更新的 fsnotify goroutine 中被读取，读写都走原子指针。
	logger atomic.Pointer[zap.Logger]
	// atomicLevel 跨多次 Init 共享，SetLevel 对已经交出去的 logger 同样生效。
	atomicLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

func init() {
	logger.Store(zap.NewNop())
}

// parseLevel 解析 "debug/info/warn/error/..."（大小写不敏感），失败回退 info。
func parseLevel(s string) zapcore.Level {
	lvl := zapcore.InfoLevel
	if err := lvl.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

func Init(appName string, cfg config.LogConfig) error {
	// 1) 日志级别：默认 info，写进共享的 AtomicLevel
	atomicLevel.SetLevel(parseLevel(cfg.Level))

	// 2) console 和 file 共用的编码器配置
	//    2026-10-19T10:00:00 INFO  apocalypse  tick  runner.go:88
	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",                           // 时间字段 key
		LevelKey:       "level",                        // 日志级别字段 key
		NameKey:        "logger",                       // logger 名称，即 appName
		CallerKey:      "caller",                       // 调用位置字段 key
		MessageKey:     "msg",                          // 日志消息字段 key
		StacktraceKey:  "stack",                        // 堆栈字段 key
		LineEnding:     zapcore.DefaultLineEnding,      // 行尾（默认 \n）
		EncodeTime:     zapcore.ISO8601TimeEncoder,     // 时间格式：ISO8601
		EncodeDuration: zapcore.SecondsDurationEncoder, // duration：以秒输出
		EncodeCaller:   zapcore.ShortCallerEncoder,     // caller：短路径（xx.go:123）
	}

	// 3) 控制台：彩色级别，写 stderr，stdout 留给 ASCII 帧
	consoleCfg := encoderCfg
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleEncoder := zapcore.NewConsoleEncoder(consoleCfg)
	consoleSyncer := zapcore.Lock(os.Stderr)
	core := zapcore.NewCore(consoleEncoder, consoleSyncer, atomicLevel)

	// 4) 文件：配置了 file_dir 才开启，JSON 编码 + lumberjack 切割
	//    单独一路 core，文件里不会混进 ANSI 颜色
	if cfg.FileDir != "" {
		fileCfg := encoderCfg
		fileCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		var fileWriter io.Writer = &lumberjack.Logger{
			Filename:   cfg.FileDir,
			MaxSize:    max(1, cfg.MaxSize),    // 单个文件最大大小（MB），至少 1
			MaxBackups: max(0, cfg.MaxBackups), // 最多保留多少个旧文件
			MaxAge:     max(0, cfg.MaxAge),     // 最多保留多少天的旧文件
			Compress:   cfg.Compress,           // 是否压缩旧文件
		}
		core = zapcore.NewTee(
			core,
			zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), zapcore.AddSync(fileWriter), atomicLevel),
		)
	}

	// 5) zap 选项：caller 必带；dev 模式下 warn 及以上带堆栈
	opts := []zap.Option{zap.AddCaller()}
	if cfg.Dev {
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.WarnLevel))
	}

	// 6) 替换全局 logger：旧的先刷盘
	old := logger.Swap(zap.New(core, opts...).Named(appName))
	_ = old.Sync()
	return nil
}

// SetLevel 动态调整日志级别（配置热更新时调用），并发安全。
func SetLevel(level string) {
	atomicLevel.SetLevel(parseLevel(level))
}

func Level() zapcore.Level {
	return atomicLevel.Level()
}

// Logger 返回当前全局 logger，未初始化时为 Nop。
func Logger() *zap.Logger {
	return logger.Load()
}

func Sync() error {
	return logger.Load().Sync()
}

// 以下是全局 logger 的便捷封装，fields 用 zap.String / zap.Int 等构造。

func Debug(msg string, fields ...zap.Field) {
	logger.Load().Debug(msg, fields...)
}

// Info 示例：Info("run started", zap.Int("ticks", 60))
func Info(msg string, fields ...zap.Field) {
	logger.Load().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Load().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Load().Error(msg, fields...)
}

// Fatal 输出日志后 os.Exit(1)。
func Fatal(msg string, fields ...zap.Field) {
	logger.Load().Fatal(msg, fields...)
}
