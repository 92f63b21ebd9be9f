package main

import (
	"fmt"
	"os"
	"zlist/config"
	"zlist/logger"
	"zlist/server"
	"zlist/tcp"
)

var defaultConfig = &config.ServerConfig{
	RunId:      config.GenRandomRunID(40),
	Bind:       "0.0.0.0",
	Port:       7379,
	MaxClients: 100,
}

var banner = `
        _ _     _
  ___  | (_)___| |_
 |_  / | | / __| __|
  / /| | | \__ \ |_
 /___|_|_|_|___/\__|
`

func fileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	return err == nil && !info.IsDir()
}

func main() {
	print(banner)
	logger.Setup(&logger.Settings{
		Path:       "logs",
		Name:       "zlist",
		Ext:        "log",
		TimeFormat: "2006-01-02",
	})

	if fileExists("zlist.yaml") {
		config.SetupConfig("zlist.yaml")
	} else {
		config.Config = defaultConfig
	}

	err := tcp.ListenAndServeWithSignal(&tcp.Config{
		Address: fmt.Sprintf("%s:%d", config.Config.Bind, config.Config.Port),
	}, server.NewHandler())
	if err != nil {
		logger.Error(err)
	}
}
