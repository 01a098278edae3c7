package simconfig

import (
	"time"

	"ZombieApocalypse/internal/grid"
	"ZombieApocalypse/internal/shared/config"
)

type Config struct {
	Log      config.LogConfig `yaml:"log" mapstructure:"log"`
	Sim      SimConfig        `yaml:"sim" mapstructure:"sim"`
	Scenario ScenarioConfig   `yaml:"scenario" mapstructure:"scenario"`
	Render   RenderConfig     `yaml:"render" mapstructure:"render"`
}

type SimConfig struct {
	Height int `yaml:"height" mapstructure:"height"`
	Width  int `yaml:"width" mapstructure:"width"`
	// Seed 为 0 时使用随机种子
	Seed         uint64        `yaml:"seed" mapstructure:"seed"`
	Ticks        int           `yaml:"ticks" mapstructure:"ticks"` // 0 表示直到收到退出信号
	TickInterval time.Duration `yaml:"tick_interval" mapstructure:"tick_interval"`
	Order        string        `yaml:"order" mapstructure:"order"` // humans_first / zombies_first
}

// ScenarioConfig 的坐标写作 "row,col" 或 [row, col]。
type ScenarioConfig struct {
	Obstacles []grid.Cell `yaml:"obstacles" mapstructure:"obstacles"`
	Zombies   []grid.Cell `yaml:"zombies" mapstructure:"zombies"`
	Humans    []grid.Cell `yaml:"humans" mapstructure:"humans"`
}

type RenderConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Overlay string `yaml:"overlay" mapstructure:"overlay"` // none / zombie / human
}
