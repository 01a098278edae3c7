package logs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ZombieApocalypse/internal/shared/config"
)

func TestInit_写入JSON文件(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apocalypse.log")
	if err := Init("test", config.LogConfig{FileDir: path, Level: "debug"}); err != nil {
		t.Fatalf("Init err=%v", err)
	}
	Info("tick", zap.Int("tick", 3))
	_ = Sync()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("读取日志文件失败 err=%v", err)
	}
	line := string(raw)
	if !strings.Contains(line, `"msg":"tick"`) || !strings.Contains(line, `"tick":3`) {
		t.Fatalf("期望 JSON 日志包含 msg 与字段, got=%s", line)
	}
	if strings.Contains(line, "\x1b[") {
		t.Fatalf("期望文件日志不带 ANSI 颜色, got=%q", line)
	}
}

func TestSetLevel_动态调整(t *testing.T) {
	if err := Init("test", config.LogConfig{Level: "info"}); err != nil {
		t.Fatalf("Init err=%v", err)
	}
	if Level() != zapcore.InfoLevel {
		t.Fatalf("期望 info, got=%v", Level())
	}
	SetLevel("DEBUG")
	if Level() != zapcore.DebugLevel {
		t.Fatalf("期望 debug, got=%v", Level())
	}
	SetLevel("not-a-level")
	if Level() != zapcore.InfoLevel {
		t.Fatalf("期望非法级别回退 info, got=%v", Level())
	}
	if !Logger().Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("期望 logger 使用同一个 AtomicLevel")
	}
}

func TestInit_与并发写日志无竞争(t *testing.T) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			Info("reload", zap.Int("i", i))
			SetLevel("warn")
		}
	}()
	for i := 0; i < 50; i++ {
		if err := Init("race", config.LogConfig{Level: "error"}); err != nil {
			t.Fatalf("Init err=%v", err)
		}
	}
	<-done
	if Logger() == nil {
		t.Fatalf("期望 Logger 始终非空")
	}
}
