package config

import (
	"github.com/spf13/viper"
)

// SectionKey is the path of the configuration section
// that parameterizes the cluster singleton manager.
const SectionKey = "cluster.singleton"

const (
	SingletonNameKey         = "singleton-name"
	RoleKey                  = "role"
	HandOverRetryIntervalKey = "hand-over-retry-interval"
)

// DownRemovalMarginKey is the cluster-wide key the downing provider
// sources its removal margin from. It lives outside the singleton
// section on purpose: the margin is governed by the cluster's downing
// policy, not by singleton-local configuration.
const DownRemovalMarginKey = "cluster.down-removal-margin"

// DownRemovalMarginOff disables the removal margin.
const DownRemovalMarginOff = "off"

var sectionKeys = []string{ // nolint: gochecknoglobals
	SingletonNameKey,
	RoleKey,
	HandOverRetryIntervalKey,
}

func Defaults() map[string]any {
	return map[string]any{
		SectionKey + "." + SingletonNameKey:         "singleton",
		SectionKey + "." + RoleKey:                  "",
		SectionKey + "." + HandOverRetryIntervalKey: "1s",
		DownRemovalMarginKey:                        DownRemovalMarginOff,
	}
}

// EnsureDefaults injects the fallback values for the singleton section
// into the given configuration tree. Defaults sit below any value coming
// from a config file, so calling this any number of times is safe.
func EnsureDefaults(root *viper.Viper) {
	if root == nil {
		return
	}
	for key, value := range Defaults() {
		root.SetDefault(key, value)
	}
}

// SingletonSection resolves the cluster singleton section of the given
// configuration tree into a standalone section. Keys are resolved one by
// one against the root, as viper's own Sub does not merge values across
// its sources: a file providing a partial section would otherwise shadow
// the injected defaults for the remaining keys.
// Returns nil when the section is entirely absent.
func SingletonSection(root *viper.Viper) *viper.Viper {
	if root == nil {
		return nil
	}
	section := viper.New()
	found := false
	for _, key := range sectionKeys {
		full := SectionKey + "." + key
		if !root.IsSet(full) {
			continue
		}
		section.Set(key, root.Get(full))
		found = true
	}
	if !found {
		return nil
	}
	return section
}

// LoadFile reads the configuration file at the given path
// and injects the fallback defaults into the resulting tree.
func LoadFile(path string) (*viper.Viper, error) {
	root := viper.New()
	root.SetConfigFile(path)
	if err := root.ReadInConfig(); err != nil {
		return nil, err
	}
	EnsureDefaults(root)
	return root, nil
}
