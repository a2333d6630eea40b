package main

import (
	"context"
	"os"

	"forum/internal/config"
	"forum/internal/model"
	"forum/internal/pkg"
	"forum/internal/repository/mysql"
	"forum/internal/repository/redis"
	"forum/internal/router"
	"forum/internal/service"

	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfgPath := os.Getenv("FORUM_CONFIG")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}
	pkg.SetSecrets(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret)

	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		logger.Fatal("mysql init failed", zap.Error(err))
	}
	if err := redis.Init(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		logger.Fatal("redis init failed", zap.Error(err))
	}
	defer redis.Close()

	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Comment{},
		&model.Like{},
		&model.ModerationOutbox{},
	); err != nil {
		logger.Fatal("automigrate failed", zap.Error(err))
	}

	// Moderation events go to Kafka when configured, otherwise to the log.
	var sender service.Sender = service.LogSender
	if cfg.Kafka.Enabled() {
		producer, err := pkg.NewKafkaProducer(cfg.Kafka)
		if err != nil {
			logger.Fatal("kafka init failed", zap.Error(err))
		}
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.NewOutboxRelayer(sender).Run(ctx)

	r := router.InitRouter(cfg)
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
