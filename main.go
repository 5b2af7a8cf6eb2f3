package main

import (
	cmd "github.com/getidex/idex/cmd/idex"
	"github.com/getidex/idex/internal"
)

var log = internal.GetLogger()

func main() {
	log.Info("Starting idex")
	cmd.Execute()
}
