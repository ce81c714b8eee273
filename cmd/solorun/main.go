package main

import (
	"github.com/alecthomas/kong"
	"go.uber.org/fx"

	"github.com/solorun/solorun/cmd/solorun/application"
	"github.com/solorun/solorun/cmd/solorun/commander"
	"github.com/solorun/solorun/cmd/solorun/components/check"
	"github.com/solorun/solorun/cmd/solorun/logging"
)

func main() {
	cli := commander.CLI{}
	cli.Plugins = kong.Plugins{
		&check.CLI{},
	}
	ctx := kong.Parse(
		&cli,
		kong.Name("solorun"),
		kong.Description("Cluster singleton coordinator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Summary:   true,
			Tree:      true,
			FlagsLast: true,
		}),
	)

	builder := application.NewBuilder(
		fx.Supply(application.Config{
			ConfigPath: cli.Globals.Config,
		}),
		application.Module,
		fx.Supply(logging.Config{
			LogLevel:  cli.Globals.LogLevel,
			LogOutput: cli.Globals.LogOutput,
		}),
		fx.Provide(logging.Provide),
		fx.WithLogger(logging.FxLogger),
	)

	if err := ctx.Run(&cli.Globals, builder); err != nil {
		ctx.FatalIfErrorf(err)
	}
}
