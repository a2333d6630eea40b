package config

import (
	"os"

	"forum/internal/pkg"

	"gopkg.in/yaml.v3"
)

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	AccessSecret  string `yaml:"access_secret"`
	RefreshSecret string `yaml:"refresh_secret"`
}

type Config struct {
	Addr     string          `yaml:"addr"`
	MySQLDSN string          `yaml:"mysql_dsn"`
	Redis    RedisConfig     `yaml:"redis"`
	JWT      JWTConfig       `yaml:"jwt"`
	SMTP     pkg.SMTPConfig  `yaml:"smtp"`
	Kafka    pkg.KafkaConfig `yaml:"kafka"`
}

func Default() *Config {
	return &Config{
		Addr:     ":8080",
		MySQLDSN: "user:password@tcp(127.0.0.1:3306)/forum?charset=utf8mb4&parseTime=True",
		Redis: RedisConfig{
			Addr: "127.0.0.1:6379",
		},
	}
}

// Load reads the YAML file over the defaults. A missing file is not an
// error: the defaults describe a local dev setup.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
