package main

import (
	"flag"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"tableside/internal/config"
	transport "tableside/internal/controllers/http"
	mmysql "tableside/internal/infra/mysql"
	"tableside/internal/infra/rabbitmq"
	mysqlrepo "tableside/internal/repository/mysql"
	"tableside/internal/services"
)

func main() {
	seed := flag.Bool("seed", false, "reset and seed the menu, then exit")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()

	db, err := mmysql.New(cfg.DSN())
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	if *seed {
		if err := seedMenu(db); err != nil {
			logger.Fatal("seed", zap.Error(err))
		}
		logger.Info("database seeded")
		return
	}

	store := mysqlrepo.NewStore(db)

	var notifier services.Notifier = services.NoopNotifier{}
	if cfg.RabbitMQURL != "" {
		publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQURL, cfg.EventExchange, logger)
		if err != nil {
			logger.Fatal("rabbitmq connect", zap.Error(err))
		}
		defer publisher.Close()
		notifier = publisher
	} else {
		logger.Info("RABBITMQ_URL not set, notifications disabled")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		DB:           0,
		PoolSize:     50,
		MinIdleConns: 5,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	menuService := services.NewMenuService(store, logger)
	orderService := services.NewOrderService(store, notifier, logger)

	handler := transport.NewHandler(menuService, orderService, rdb, logger)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	logger.Info("starting server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server run", zap.Error(err))
	}
}
