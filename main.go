package main

import (
	_ "embed"

	"github.com/learncodes/mynote-sync/cmd"
)

//go:embed config/config.yaml
var c string

func main() {
	cmd.Execute(c)
}
