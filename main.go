package main

import (
	"github.com/kipdayo/kipdayo/cmd"
	"github.com/kipdayo/kipdayo/config"
	"github.com/kipdayo/kipdayo/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	cmd.Execute()
}
