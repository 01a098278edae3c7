package main

import (
	"ZombieApocalypse/internal/shared/logs"
	"ZombieApocalypse/internal/shared/simconfig"
	"ZombieApocalypse/modules/kit/logx"
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestReadConfig(t *testing.T) {
	conf, _, err := simconfig.Load("../../configs/conf.yml")
	if err != nil {
		t.Fatalf("读取示例配置失败 err=%v", err)
	}
	conf.Log.FileDir = ""
	if err := logs.Init("TestReadConfig", conf.Log); err != nil {
		t.Fatalf("logs.Init err=%v", err)
	}
	logs.Info("conf", zap.Any("conf", conf))
}

func TestBuild_示例场景可运行(t *testing.T) {
	conf, _, err := simconfig.Load("../../configs/conf.yml")
	if err != nil {
		t.Fatalf("读取示例配置失败 err=%v", err)
	}
	conf.Render.Enabled = false
	conf.Sim.Seed = 0

	runner, err := build(conf, logx.Nop())
	if err != nil {
		t.Fatalf("build err=%v", err)
	}
	if conf.Sim.Seed == 0 {
		t.Fatalf("期望 seed 为 0 时补上随机种子")
	}
	if err := runner.Run(context.Background(), 5, 0); err != nil {
		t.Fatalf("Run err=%v", err)
	}
	if runner.Ticks() != 5 {
		t.Fatalf("期望 5 个 tick, got=%d", runner.Ticks())
	}
}

func TestBuild_障碍越界(t *testing.T) {
	conf, _, err := simconfig.Load("../../configs/conf.yml")
	if err != nil {
		t.Fatalf("读取示例配置失败 err=%v", err)
	}
	conf.Sim.Height = 2
	if _, err := build(conf, logx.Nop()); err == nil {
		t.Fatalf("期望障碍越界时 build 失败")
	}
}
