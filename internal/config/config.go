package config

import (
	"log"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	IsDebug bool `yaml:"is_debug" env:"IS_DEBUG" env-default:"false"`
	Listen  struct {
		BindIP string `yaml:"bind_ip" env:"API_BIND_IP" env-default:"0.0.0.0"`
		Port   string `yaml:"port" env:"API_PORT" env-default:"5100"`
	} `yaml:"listen"`
	Roaming struct {
		ProviderID     string `yaml:"provider_id" env:"ROAMING_PROVIDER_ID" env-default:"DE*GDF"`
		DataEndpoint   string `yaml:"data_endpoint" env:"ROAMING_DATA_ENDPOINT"`
		StatusEndpoint string `yaml:"status_endpoint" env:"ROAMING_STATUS_ENDPOINT"`
		PullInterval   int    `yaml:"pull_interval" env:"ROAMING_PULL_INTERVAL" env-default:"300"`
	} `yaml:"roaming"`
}

var instance *Config
var once sync.Once

func GetConfig() (*Config, error) {
	var err error
	once.Do(func() {
		log.Println("reading config")
		instance = &Config{}
		if err = cleanenv.ReadConfig("config.yml", instance); err != nil {
			desc, _ := cleanenv.GetDescription(instance, nil)
			log.Println(desc)
			log.Println(err)
			instance = nil
		}
	})
	return instance, err
}
