package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/bookloop/lending-service/pkg/kafka"
	"github.com/bookloop/lending-service/pkg/logger"
	"github.com/bookloop/lending-service/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"LENDING_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"LENDING_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"15s"`
	WriteTimeout time.Duration
}

type Config struct {
	Server        HTTPServer  `yaml:"server"`
	Database      postgres.DB `yaml:"database"`
	Kafka         kafka.Config
	Log           logger.Log    `yaml:"log"`
	JWTKey        string        `yaml:"jwtKey" envconfig:"JWT_KEY"`
	SweepInterval time.Duration `yaml:"sweepInterval" envconfig:"OVERDUE_SWEEP_INTERVAL" default:"1h"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
