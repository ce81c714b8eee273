package commander

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/solorun/solorun/cmd/solorun/build"
)

type Globals struct {
	LogLevel  string `default:"info"    enum:"debug,info,warn,error"        help:"Sets the minimum severity level for log messages"`
	LogOutput string `default:"console" enum:"console,stdout,stderr,json"   help:"Specifies the format for log output"`

	Config string `default:"solorun.yaml" help:"Path to the solorun configuration file" type:"path"`
}

type VersionCmd struct{}

func (v *VersionCmd) Run() error {
	version := fmt.Sprintf("Version: %s (%s) built at %s", build.Version, build.Commit, build.Time)
	fmt.Println(version) // nolint: forbidigo
	os.Exit(0)
	return nil
}

type CLI struct {
	Globals
	kong.Plugins

	Version VersionCmd `cmd:"" help:"Display the app version and exit"`
}
