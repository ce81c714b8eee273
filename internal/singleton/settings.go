package singleton

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/solorun/solorun/internal/cluster"
	"github.com/solorun/solorun/internal/config"
	"github.com/solorun/solorun/internal/validation"
)

var (
	// ErrInvalidArgument is the base error for settings
	// constructed from values that violate an invariant.
	ErrInvalidArgument = errors.New("invalid cluster singleton settings")
	// ErrConfiguration is the base error for settings constructed
	// from a configuration section that is absent or malformed.
	ErrConfiguration = errors.New("invalid cluster singleton configuration")
)

var (
	ErrBlankSingletonName               = fmt.Errorf("%w: singleton-name must not be blank", ErrInvalidArgument)
	ErrNegativeRemovalMargin            = fmt.Errorf("%w: removal-margin must not be negative", ErrInvalidArgument)
	ErrNonPositiveHandOverRetryInterval = fmt.Errorf("%w: hand-over-retry-interval must be positive", ErrInvalidArgument)
)

// ManagerSettings parameterizes the cluster singleton manager.
// Instances are immutable: the With derivations return a copy
// with a single field replaced, revalidated from scratch.
type ManagerSettings struct {
	// SingletonName is the name the singleton instance runs under.
	SingletonName string
	// Role restricts the singleton to cluster members carrying the role.
	// The empty string means no role filter; HasRole tells the two apart.
	Role string
	// RemovalMargin is how long to wait after a member is removed before
	// its singleton is considered dead and may be taken over. Zero is a
	// placeholder that the system factory overwrites from the cluster's
	// downing provider.
	RemovalMargin time.Duration
	// HandOverRetryInterval is the retry period for hand-over requests
	// sent to the previous singleton holder.
	HandOverRetryInterval time.Duration
}

var Blank ManagerSettings // nolint: gochecknoglobals

var validate = validation.New() // nolint: gochecknoglobals

// System is the running-process handle the system factory consumes:
// a hierarchical configuration tree and the active cluster's downing provider.
type System interface {
	Config() *viper.Viper
	DowningProvider() cluster.DowningProvider
}

func NewManagerSettings(
	name, role string,
	removalMargin, handOverRetryInterval time.Duration,
) (ManagerSettings, error) {
	if strings.TrimSpace(name) == "" {
		return Blank, ErrBlankSingletonName
	}
	if removalMargin < 0 {
		return Blank, ErrNegativeRemovalMargin
	}
	if handOverRetryInterval <= 0 {
		return Blank, ErrNonPositiveHandOverRetryInterval
	}
	return ManagerSettings{
		SingletonName:         name,
		Role:                  normalizeRole(role),
		RemovalMargin:         removalMargin,
		HandOverRetryInterval: handOverRetryInterval,
	}, nil
}

func MustNewManagerSettings(
	name, role string,
	removalMargin, handOverRetryInterval time.Duration,
) ManagerSettings {
	settings, err := NewManagerSettings(name, role, removalMargin, handOverRetryInterval)
	if err != nil {
		panic(err)
	}
	return settings
}

type sectionConfig struct {
	SingletonName         string `mapstructure:"singleton-name"           validate:"required"`
	Role                  string `mapstructure:"role"`
	HandOverRetryInterval string `mapstructure:"hand-over-retry-interval" validate:"required"`
}

// NewManagerSettingsFromConfig builds settings from the cluster singleton
// configuration section. RemovalMargin is left at zero: its real source is
// the cluster's downing policy, supplied either through
// NewManagerSettingsFromConfigAndMargin or the system factory.
func NewManagerSettingsFromConfig(section *viper.Viper) (ManagerSettings, error) {
	return NewManagerSettingsFromConfigAndMargin(section, 0)
}

// NewManagerSettingsFromConfigAndMargin builds settings from the cluster
// singleton configuration section, with the removal margin supplied
// explicitly by the caller.
func NewManagerSettingsFromConfigAndMargin(
	section *viper.Viper,
	removalMargin time.Duration,
) (ManagerSettings, error) {
	if section == nil {
		return Blank, newMissingSectionError()
	}

	var cfg sectionConfig
	if err := section.Unmarshal(&cfg); err != nil {
		return Blank, fmt.Errorf("%w: unable to read section %q: %v", ErrConfiguration, config.SectionKey, err)
	}

	if err := validate.Struct(&cfg); err != nil {
		var violations validator.ValidationErrors
		if errors.As(err, &violations) && len(violations) > 0 {
			return Blank, fmt.Errorf(
				"%w: missing or empty required key %q in section %q",
				ErrConfiguration, violations[0].Field(), config.SectionKey,
			)
		}
		return Blank, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	interval, err := time.ParseDuration(cfg.HandOverRetryInterval)
	if err != nil {
		return Blank, fmt.Errorf(
			"%w: malformed duration %q for key %q",
			ErrConfiguration, cfg.HandOverRetryInterval, config.HandOverRetryIntervalKey,
		)
	}

	return NewManagerSettings(cfg.SingletonName, cfg.Role, removalMargin, interval)
}

// NewManagerSettingsFromSystem builds settings from a running system:
// the fallback defaults are injected into the system's configuration tree,
// the singleton section is resolved from it, and the removal margin is
// taken from the cluster's downing provider so that singleton failover
// timing never disagrees with the cluster's own downing policy.
func NewManagerSettingsFromSystem(sys System) (ManagerSettings, error) {
	root := sys.Config()
	config.EnsureDefaults(root)
	section := config.SingletonSection(root)
	if section == nil {
		return Blank, newMissingSectionError()
	}
	return NewManagerSettingsFromConfigAndMargin(section, sys.DowningProvider().DownRemovalMargin())
}

func (s ManagerSettings) WithSingletonName(name string) (ManagerSettings, error) {
	return NewManagerSettings(name, s.Role, s.RemovalMargin, s.HandOverRetryInterval)
}

func (s ManagerSettings) WithRole(role string) (ManagerSettings, error) {
	return NewManagerSettings(s.SingletonName, role, s.RemovalMargin, s.HandOverRetryInterval)
}

func (s ManagerSettings) WithRemovalMargin(margin time.Duration) (ManagerSettings, error) {
	return NewManagerSettings(s.SingletonName, s.Role, margin, s.HandOverRetryInterval)
}

func (s ManagerSettings) WithHandOverRetryInterval(interval time.Duration) (ManagerSettings, error) {
	return NewManagerSettings(s.SingletonName, s.Role, s.RemovalMargin, interval)
}

// HasRole reports whether the singleton is restricted to a cluster role.
func (s ManagerSettings) HasRole() bool {
	return s.Role != ""
}

func (s ManagerSettings) String() string {
	role := s.Role
	if role == "" {
		role = "*"
	}
	return fmt.Sprintf("%s@%s", s.SingletonName, role)
}

func newMissingSectionError() error {
	return fmt.Errorf("%w: missing section %q for ManagerSettings", ErrConfiguration, config.SectionKey)
}

// normalizeRole collapses a blank role to the no-role filter, so that a role
// is never observably an empty or whitespace-only string. This is the single
// place where the distinction between "no role" and "empty role" disappears.
func normalizeRole(role string) string {
	if strings.TrimSpace(role) == "" {
		return ""
	}
	return role
}
