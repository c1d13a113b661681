package main

import (
	"github.com/couchcryptid/condor-taskgen/internal/cli"
)

func main() {
	cli.Execute()
}
