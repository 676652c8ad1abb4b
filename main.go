package main

import (
	_ "embed"

	"github.com/haierkeys/cloud-notes-api/cmd"
)

//go:embed config/config.yaml
var c string

func main() {
	cmd.Execute(c)
}
