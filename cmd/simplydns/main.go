package main

import (
	"github.com/lite-lake/simply-dns/internal/infrastructure/logger"
	"github.com/lite-lake/simply-dns/internal/interfaces/cli"
)

func main() {
	logger.Init(logger.FromEnv())
	cli.Execute()
}
