package main

import (
	"ZombieApocalypse/internal/apocalypse"
	"ZombieApocalypse/internal/driver"
	"ZombieApocalypse/internal/shared/config"
	"ZombieApocalypse/internal/shared/logs"
	"ZombieApocalypse/internal/shared/simconfig"
	"ZombieApocalypse/modules/kit/errx"
	"ZombieApocalypse/modules/kit/logx"
	"ZombieApocalypse/modules/kit/tracex"
	"context"
	"errors"
	"flag"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

const appName = "apocalypse"

func main() {
	os.Exit(run())
}

func run() int {
	cfgName := flag.String("config", "", "配置文件路径，缺省时从当前目录向上查找 configs/conf.yml")
	ticks := flag.Int("ticks", -1, "覆盖 sim.ticks，0 表示一直运行到收到退出信号")
	flag.Parse()

	conf, v, err := simconfig.Load(*cfgName)
	if err != nil {
		_ = logs.Init(appName, config.LogConfig{})
		reportStartupError(context.Background(), "load_config", err)
		return 1
	}
	if err := logs.Init(appName, conf.Log); err != nil {
		panic(err)
	}
	defer func() { _ = logs.Sync() }()
	logs.Info("conf", zap.Any("conf", conf))

	// 日志就绪后才开始监听，回调里只调整日志级别
	simconfig.Watch(v, func(next simconfig.Config) {
		logs.SetLevel(next.Log.Level)
		logs.Info("log level reloaded", zap.String("level", next.Log.Level))
	}, func(err error) {
		reportConfigError(context.Background(), "reload_config", err)
	})

	if *ticks >= 0 {
		conf.Sim.Ticks = *ticks
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	runID := tracex.NewTraceID()
	ctx = tracex.WithTraceID(ctx, runID)

	logger := logx.NewZapLogger(logs.Logger())
	runner, err := build(conf, logger)
	if err != nil {
		reportStartupError(ctx, "build_simulation", err)
		return 1
	}

	logger.WithContext(ctx).Info("simulation ready",
		zap.String("run_id", runID),
		zap.Int("height", conf.Sim.Height),
		zap.Int("width", conf.Sim.Width),
		zap.Uint64("seed", conf.Sim.Seed),
	)
	if err := runner.Run(ctx, conf.Sim.Ticks, conf.Sim.TickInterval); err != nil {
		// tick 失败已在驱动内上报
		return 1
	}
	return 0
}

func build(conf *simconfig.Config, logger logx.Logger) (*driver.Runner, error) {
	order, err := driver.ParseOrder(conf.Sim.Order)
	if err != nil {
		return nil, err
	}
	overlay, err := driver.ParseOverlay(conf.Render.Overlay)
	if err != nil {
		return nil, err
	}

	if conf.Sim.Seed == 0 {
		conf.Sim.Seed = rand.Uint64()
	}
	sim, err := apocalypse.New(conf.Sim.Height, conf.Sim.Width,
		apocalypse.WithObstacles(conf.Scenario.Obstacles),
		apocalypse.WithZombies(conf.Scenario.Zombies),
		apocalypse.WithHumans(conf.Scenario.Humans),
		apocalypse.WithRand(rand.New(rand.NewPCG(conf.Sim.Seed, conf.Sim.Seed))),
		apocalypse.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	opts := []driver.Option{driver.WithOrder(order), driver.WithLogger(logger)}
	if conf.Render.Enabled {
		opts = append(opts, driver.WithRenderer(driver.NewRenderer(os.Stdout, overlay)))
	}
	return driver.NewRunner(sim, opts...), nil
}

// reportStartupError 上报启动失败并刷盘，调用方随后退出。
func reportStartupError(ctx context.Context, action string, err error) {
	reportConfigError(ctx, action, err)
	_ = logs.Sync()
}

// reportConfigError 区分配置拒绝（biz，WARN）与技术错误（sys，ERROR）。
func reportConfigError(ctx context.Context, action string, err error) {
	logger := logx.NewZapLogger(logs.Logger())
	var e *errx.Error
	if errors.As(err, &e) && !e.IsSys() {
		logx.ReportBizWithLoggerContext(ctx, logger, logx.NewBizLog(action, e.Reason(), e.Error()), zap.Any("data", e.Data()))
	} else {
		logx.ReportSysErrorWithLoggerContext(ctx, logger, logx.NewSysLog(action, err))
	}
}
