package main

import (
	"os"

	// Packages
	version "github.com/docloom/go-gemini/pkg/version"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type VersionCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *VersionCmd) Run(globals *Globals) error {
	return version.JSON(os.Stdout, execName())
}
