package config

import (
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ServerConfig zlist服务配置
type ServerConfig struct {
	RunId      string `yaml:"RunID"`      // 运行ID，每次启动都不一样
	Bind       string `yaml:"Bind"`       // 绑定地址
	Port       int    `yaml:"Port"`       // 服务端口
	Dir        string `yaml:"Dir"`        // 服务运行目录
	MaxClients int    `yaml:"MaxClients"` // 最大客户端数量，0表示不限制

	ConfigFilePath string `yaml:"configFilePath,omitempty"` // 配置文件路径
}

// ServerInfo 每次启动时的运行信息
type ServerInfo struct {
	StartUpTime time.Time // 服务启动时间
}

var Config *ServerConfig
var EachTimeServerInfo *ServerInfo

func init() {
	EachTimeServerInfo = &ServerInfo{
		StartUpTime: time.Now(),
	}

	Config = &ServerConfig{
		RunId: GenRandomRunID(40),
		Bind:  "127.0.0.1",
		Port:  7379,
	}
}

var numberAndLetters = []byte("0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

func GenRandomRunID(length int) string {
	res := []byte("ID_")
	for i := 0; i < length; i++ {
		res = append(res, numberAndLetters[rand.Intn(len(numberAndLetters))])
	}
	return string(res)
}

func parseConfigFile(confFilePath string) (*ServerConfig, error) {
	reader, err := os.Open(confFilePath)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	config := &ServerConfig{}
	fileBytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	if err = yaml.Unmarshal(fileBytes, config); err != nil {
		return nil, err
	}
	return config, nil
}

func SetupConfig(configFilePath string) {
	var err error
	Config, err = parseConfigFile(configFilePath)
	if err != nil {
		panic(err)
	}
	Config.RunId = GenRandomRunID(40)
	absPath, err := filepath.Abs(configFilePath)
	if err == nil {
		Config.ConfigFilePath = absPath
	}
	if Config.Dir == "" {
		Config.Dir = "."
	}
}
