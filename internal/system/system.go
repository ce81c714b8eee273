package system

import (
	"github.com/spf13/viper"

	"github.com/solorun/solorun/internal/cluster"
)

// System bundles the process-wide collaborators the singleton settings
// factories consume: the root configuration tree and the downing provider
// of the active cluster.
type System struct {
	config  *viper.Viper
	downing cluster.DowningProvider
}

func New(config *viper.Viper, downing cluster.DowningProvider) System {
	return System{
		config:  config,
		downing: downing,
	}
}

func (s System) Config() *viper.Viper {
	return s.config
}

func (s System) DowningProvider() cluster.DowningProvider {
	return s.downing
}
