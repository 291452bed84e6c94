// Package main is the entry point for the skiff CLI.
//
// skiff deploys a declaratively configured application onto provisioned
// cloud servers running a lightweight Kubernetes runtime. This binary is
// the orchestration-and-presentation runtime; provisioning and cluster
// operations are performed by the deployment engine driver linked in at
// build time.
//
// Commands: init, deploy, destroy, status, logs, exec, ssh.
//
// For detailed usage information, run:
//
//	skiff --help
package main

import (
	"os"

	"github.com/skiffhq/skiff/cmd/skiff/commands"
	"github.com/skiffhq/skiff/internal/ui"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		ui.NewFormatter(os.Stderr).Error(err.Error())
		os.Exit(1)
	}
}
