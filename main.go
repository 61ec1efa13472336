package main

import (
	"log"

	"evroam/api"
	"evroam/internal/config"
	"evroam/logger"
	"evroam/roaming"
)

func main() {

	conf, err := config.GetConfig()
	if err != nil {
		log.Println("configuration failed", err)
		return
	}

	logHandler := logger.NewLogger(conf.IsDebug)

	service := roaming.NewService(conf, logHandler)
	service.Start()

	server := api.NewServerApi(conf, logHandler, service)
	if err = server.Start(); err != nil {
		logHandler.Error("api server stopped", err)
	}

}
