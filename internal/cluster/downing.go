package cluster

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/solorun/solorun/internal/config"
)

var (
	ErrNegativeDownRemovalMargin  = errors.New("down-removal-margin must not be negative")
	ErrMalformedDownRemovalMargin = errors.New("down-removal-margin is not a valid duration")
)

// DowningProvider decides when an unreachable member is declared down
// and supplies the authoritative margin to wait after a member removal
// before its singleton responsibilities may be taken over.
type DowningProvider interface {
	DownRemovalMargin() time.Duration
}

// StaticDowningProvider carries a fixed down-removal margin.
type StaticDowningProvider struct {
	margin time.Duration
}

var NoDowning StaticDowningProvider // nolint: gochecknoglobals

func NewStaticDowningProvider(margin time.Duration) (StaticDowningProvider, error) {
	if margin < 0 {
		return NoDowning, ErrNegativeDownRemovalMargin
	}
	return StaticDowningProvider{margin: margin}, nil
}

func MustNewStaticDowningProvider(margin time.Duration) StaticDowningProvider {
	provider, err := NewStaticDowningProvider(margin)
	if err != nil {
		panic(err)
	}
	return provider
}

func (p StaticDowningProvider) DownRemovalMargin() time.Duration {
	return p.margin
}

// NewDowningProviderFromConfig reads the cluster-wide down-removal margin
// from the given configuration tree. A missing value or the literal "off"
// leaves the margin at zero.
func NewDowningProviderFromConfig(root *viper.Viper) (StaticDowningProvider, error) {
	if root == nil {
		return NoDowning, nil
	}
	raw := root.GetString(config.DownRemovalMarginKey)
	if raw == "" || raw == config.DownRemovalMarginOff {
		return NoDowning, nil
	}
	margin, err := time.ParseDuration(raw)
	if err != nil {
		return NoDowning, fmt.Errorf("%w: %q", ErrMalformedDownRemovalMargin, raw)
	}
	return NewStaticDowningProvider(margin)
}
