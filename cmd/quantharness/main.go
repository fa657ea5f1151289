package main

import (
	qhcmd "github.com/beneills/quantharness/cmd"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	qhcmd.SetVersionInfo(version, commit)
	qhcmd.Execute()
}
