package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/azargarov/dispatchsim/cmd"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal("failed to build logger:", err)
	}
	defer logger.Sync()

	cmd.Execute(logger)
}
