package simconfig

import (
	"reflect"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"ZombieApocalypse/internal/driver"
	"ZombieApocalypse/internal/grid"
	"ZombieApocalypse/internal/shared/config"
	"ZombieApocalypse/modules/kit/errx"
)

var defaults = map[string]any{
	"log.level":         "info",
	"sim.height":        20,
	"sim.width":         30,
	"sim.tick_interval": "200ms",
	"sim.order":         driver.HumansFirst.String(),
	"render.enabled":    true,
	"render.overlay":    driver.OverlayNone.String(),
}

// Load 读取模拟配置，cfgName 为空时向上查找 configs/conf.yml。
// 返回的 viper 交给 Watch；先 Load、再初始化日志、最后 Watch。
func Load(cfgName string) (*Config, *viper.Viper, error) {
	var conf Config
	v, err := config.Load(cfgName, &conf, config.Options{
		Defaults: defaults,
		Hooks:    []mapstructure.DecodeHookFunc{CellHookFunc()},
	})
	if err != nil {
		return nil, nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, nil, err
	}
	return &conf, v, nil
}

// Watch 监听配置文件：重新解码并校验通过后回调 onChange，失败交给 onErr。
// 两个回调都在 fsnotify 的 goroutine 中执行，调用方只应做并发安全的操作（例如调整日志级别）。
func Watch(v *viper.Viper, onChange func(Config), onErr func(error)) {
	config.Watch(v, func(v *viper.Viper, e fsnotify.Event) {
		var next Config
		err := config.Decode(v, &next, CellHookFunc())
		if err != nil {
			err = errx.ErrConfig.WithData("path", e.Name).WithCause(err)
		} else {
			err = next.Validate()
		}
		if err != nil {
			if onErr != nil {
				onErr(err)
			}
			return
		}
		onChange(next)
	})
}

// Validate 校验尺寸、tick 和渲染参数；order/overlay 的写法以驱动的解析为准。
// 场景坐标的越界由模拟内核构造时检查。
func (c *Config) Validate() error {
	switch {
	case c.Sim.Height <= 0 || c.Sim.Width <= 0:
		return reject(ReasonGridTooSmall, "height", c.Sim.Height, "width", c.Sim.Width)
	case c.Sim.Ticks < 0:
		return reject(ReasonNegativeTicks, "ticks", c.Sim.Ticks)
	case c.Sim.TickInterval < 0:
		return reject(ReasonNegativeInterval, "tick_interval", c.Sim.TickInterval.String())
	}
	if _, err := driver.ParseOrder(c.Sim.Order); err != nil {
		return reject(ReasonUnknownOrder, "order", c.Sim.Order).WithCause(err)
	}
	if _, err := driver.ParseOverlay(c.Render.Overlay); err != nil {
		return reject(ReasonUnknownOverlay, "overlay", c.Render.Overlay).WithCause(err)
	}
	return nil
}

func reject(r Reason, kv ...any) *errx.Error {
	err := errx.ErrReqParamERR.WithReason(r).WithData("message", r.Message)
	for i := 0; i+1 < len(kv); i += 2 {
		err = err.WithData(kv[i].(string), kv[i+1])
	}
	return err
}

// CellHookFunc 把 "row,col" 字符串或 [row, col] 列表解码为 grid.Cell。
func CellHookFunc() mapstructure.DecodeHookFuncType {
	cellType := reflect.TypeOf(grid.Cell{})
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != cellType {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			parts := strings.Split(v, ",")
			if len(parts) != 2 {
				return nil, reject(ReasonBadCell, "cell", v)
			}
			return toCell(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), v)
		case []any:
			if len(v) != 2 {
				return nil, reject(ReasonBadCell, "cell", v)
			}
			return toCell(v[0], v[1], v)
		default:
			return data, nil
		}
	}
}

func toCell(row, col any, raw any) (grid.Cell, error) {
	r, err := cast.ToIntE(row)
	if err != nil {
		return grid.Cell{}, reject(ReasonBadCell, "cell", raw).WithCause(err)
	}
	c, err := cast.ToIntE(col)
	if err != nil {
		return grid.Cell{}, reject(ReasonBadCell, "cell", raw).WithCause(err)
	}
	return grid.Cell{Row: r, Col: c}, nil
}
