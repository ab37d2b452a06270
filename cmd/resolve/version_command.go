package main

// VersionCommand prints the build version.
type VersionCommand struct{}

func (c *VersionCommand) Synopsis() string {
	return "Print the resolve version"
}

func (c *VersionCommand) Help() string {
	return "Usage: resolve version"
}

func (c *VersionCommand) Run(args []string) int {
	newMeta(false, false).Ui.Output("resolve " + version)
	return 0
}
