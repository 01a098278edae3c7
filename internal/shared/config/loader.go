package config

import (
	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"ZombieApocalypse/modules/kit/errx"
)

// Options 控制一次加载。
type Options struct {
	// Defaults 在文件缺省对应 key 时生效。
	Defaults map[string]any
	// Hooks 追加到默认 decode hook（字符串转 duration、逗号分隔转切片）之前。
	Hooks []mapstructure.DecodeHookFunc
}

// Load 读取 cfgName 指向的 YAML 并解码到 out，返回底层 viper，调用方可在日志等依赖就绪后再 Watch。
func Load(cfgName string, out any, opts Options) (*viper.Viper, error) {
	configPath, err := Resolve(cfgName)
	if err != nil {
		return nil, err
	}
	if !fileExist(configPath) {
		return nil, errx.ErrConfig.WithData("reason", "config file not exist").WithData("path", configPath)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	for k, val := range opts.Defaults {
		v.SetDefault(k, val)
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, errx.ErrConfig.WithData("path", configPath).WithCause(err)
	}
	if err := Decode(v, out, opts.Hooks...); err != nil {
		return nil, errx.ErrConfig.WithData("path", configPath).WithCause(err)
	}
	return v, nil
}

// Watch 开启文件监听，文件变更后 viper 重新读取并回调 onChange。
// onChange 在 fsnotify 的 goroutine 中执行。
func Watch(v *viper.Viper, onChange func(v *viper.Viper, e fsnotify.Event)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		onChange(v, e)
	})
	v.WatchConfig()
}

// Decode 用 mapstructure hook 把 viper 当前内容解码到 out。
func Decode(v *viper.Viper, out any, hooks ...mapstructure.DecodeHookFunc) error {
	all := append(append([]mapstructure.DecodeHookFunc(nil), hooks...),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
	return v.Unmarshal(out, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(all...)))
}
