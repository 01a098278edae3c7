package driver

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"ZombieApocalypse/internal/apocalypse"
	"ZombieApocalypse/modules/kit/logx"
)

// Simulation 是驱动调用的模拟内核，*apocalypse.Apocalypse 满足它。
type Simulation interface {
	Board
	MoveHumans(zombieField apocalypse.DistanceField) error
	MoveZombies(humanField apocalypse.DistanceField) error
}

// TickReport 是一次 tick 之后的快照。
type TickReport struct {
	Tick    int
	Zombies int
	Humans  int
	// Caught 是与僵尸同格的人类数量（同格多个人类分别计数）。
	Caught  int
	Elapsed time.Duration
}

type Runner struct {
	sim      Simulation
	order    Order
	renderer *Renderer
	log      logx.Logger
	tick     int
}

type Option func(*Runner)

func WithOrder(o Order) Option {
	return func(r *Runner) { r.order = o }
}

// WithRenderer 为 nil 时不输出帧。
func WithRenderer(rd *Renderer) Option {
	return func(r *Runner) { r.renderer = rd }
}

func WithLogger(l logx.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

func NewRunner(sim Simulation, opts ...Option) *Runner {
	r := &Runner{sim: sim, order: HumansFirst, log: logx.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With(zap.String("order", r.order.String()))
	return r
}

// Ticks 返回已完成的 tick 数。
func (r *Runner) Ticks() int { return r.tick }

// Tick 推进一步。内核的 panic（例如调用方加入了越界实体）在这里恢复为 ErrTickFailed，
// 以 sys 错误上报；之后驱动不应继续推进。
func (r *Runner) Tick(ctx context.Context) (rep TickReport, err error) {
	if err := ctx.Err(); err != nil {
		return TickReport{}, err
	}
	start := time.Now()
	defer r.recoverTo(ctx, "tick", &err)

	if err := r.step(); err != nil {
		return TickReport{}, err
	}
	r.tick++
	rep = TickReport{
		Tick:    r.tick,
		Zombies: r.sim.NumZombies(),
		Humans:  r.sim.NumHumans(),
		Caught:  r.caught(),
		Elapsed: time.Since(start),
	}
	logx.ReportTickWithLoggerContext(ctx, r.log, logx.TickLog{
		Tick:      rep.Tick,
		Zombies:   rep.Zombies,
		Humans:    rep.Humans,
		Caught:    rep.Caught,
		ElapsedUS: rep.Elapsed.Microseconds(),
	})
	return rep, nil
}

// Run 每隔 interval 推进一次，直到完成 ticks 次（0 表示不限）或 ctx 取消。
// interval 为 0 时不等待。ctx 取消视为正常结束。
func (r *Runner) Run(ctx context.Context, ticks int, interval time.Duration) error {
	log := r.log.WithContext(ctx)
	log.Info("run started",
		zap.Int("ticks", ticks),
		zap.Duration("interval", interval),
	)
	if err := r.render(ctx); err != nil {
		return err
	}

	var tickC <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tickC = ticker.C
	}

	for n := 0; ticks == 0 || n < ticks; n++ {
		if tickC != nil {
			select {
			case <-ctx.Done():
			case <-tickC:
			}
		}
		if ctx.Err() != nil {
			log.Info("run cancelled", zap.Int("completed", r.tick))
			return nil
		}
		if _, err := r.Tick(ctx); err != nil {
			return err
		}
		if err := r.render(ctx); err != nil {
			return err
		}
	}
	log.Info("run finished", zap.Int("completed", r.tick))
	return nil
}

func (r *Runner) step() error {
	if r.order == ZombiesFirst {
		if err := r.moveZombies(); err != nil {
			return err
		}
		return r.moveHumans()
	}
	if err := r.moveHumans(); err != nil {
		return err
	}
	return r.moveZombies()
}

func (r *Runner) moveHumans() error {
	return r.sim.MoveHumans(r.sim.ComputeDistanceField(apocalypse.Zombie))
}

func (r *Runner) moveZombies() error {
	return r.sim.MoveZombies(r.sim.ComputeDistanceField(apocalypse.Human))
}

func (r *Runner) caught() int {
	zombies := occupied(r.sim.Zombies())
	n := 0
	for c := range r.sim.Humans() {
		if zombies[c] {
			n++
		}
	}
	return n
}

func (r *Runner) render(ctx context.Context) (err error) {
	if r.renderer == nil {
		return nil
	}
	defer r.recoverTo(ctx, "render", &err)
	return r.renderer.Render(r.tick, r.sim)
}

func (r *Runner) recoverTo(ctx context.Context, action string, err *error) {
	p := recover()
	if p == nil {
		return
	}
	cause, ok := p.(error)
	if !ok {
		cause = fmt.Errorf("panic: %v", p)
	}
	failed := ErrTickFailed.WithDataMap(map[string]any{
		"action":    action,
		"completed": r.tick,
	}).WithCause(cause)
	logx.ReportSysErrorWithLoggerContext(ctx, r.log, logx.NewSysLog(action, failed))
	*err = failed
}

var _ Simulation = (*apocalypse.Apocalypse)(nil)
