package application

import (
	"github.com/spf13/viper"
	"go.uber.org/fx"

	"github.com/solorun/solorun/cmd/solorun/logging"
	"github.com/solorun/solorun/internal/cluster"
	"github.com/solorun/solorun/internal/config"
	"github.com/solorun/solorun/internal/singleton"
	"github.com/solorun/solorun/internal/system"
)

type Config struct {
	ConfigPath string
}

type Builder struct {
	opts []fx.Option
}

func NewBuilder(opts ...fx.Option) *Builder {
	return &Builder{
		opts: opts,
	}
}

func (b *Builder) Add(opts ...fx.Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

func (b *Builder) Build() *fx.App {
	return fx.New(b.opts...)
}

func provideConfigTree(cfg Config) (*viper.Viper, error) {
	return config.LoadFile(cfg.ConfigPath)
}

func provideDowningProvider(root *viper.Viper) (cluster.DowningProvider, error) {
	return cluster.NewDowningProviderFromConfig(root)
}

func provideSystem(root *viper.Viper, downing cluster.DowningProvider) system.System {
	return system.New(root, downing)
}

func provideSettings(sys system.System) (singleton.ManagerSettings, error) {
	return singleton.NewManagerSettingsFromSystem(sys)
}

var Module = fx.Module("application",
	fx.Invoke(logging.NoGlobal),
	fx.Provide(provideConfigTree),
	fx.Provide(provideDowningProvider),
	fx.Provide(provideSystem),
	fx.Provide(provideSettings),
)
