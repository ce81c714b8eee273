package check

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/solorun/solorun/cmd/solorun/application"
	"github.com/solorun/solorun/cmd/solorun/commander"
	"github.com/solorun/solorun/internal/singleton"
)

type command struct{}

func (c *command) Run(_ *commander.Globals, builder *application.Builder) error {
	app := builder.
		Add(
			fx.Invoke(report),
		).
		Build()
	return app.Err()
}

func report(settings singleton.ManagerSettings, logger *zerolog.Logger) {
	logger.Info().
		Str("name", settings.SingletonName).
		Str("role", settings.Role).
		Bool("role-filter", settings.HasRole()).
		Dur("removal-margin", settings.RemovalMargin).
		Dur("hand-over-retry-interval", settings.HandOverRetryInterval).
		Stringer("singleton", settings).
		Msg("Cluster singleton settings are valid")
}

type CLI struct {
	Check command `cmd:"" help:"Validate the configuration and print the effective cluster singleton settings"`
}
