package main

import (
	"mindwell/config"
	"mindwell/di"
	"mindwell/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
