package cmd

import "fmt"

// Version is set via ldflags at build time:
// -ldflags "-X github.com/robomsg/msggen/internal/cmd.Version=x.y.z"
var Version = ""

// VersionCmd prints the build version.
type VersionCmd struct{}

func (VersionCmd) Run() error {
	v := Version
	if v == "" {
		v = "0.0.1-dev"
	}
	fmt.Println(v)
	return nil
}
