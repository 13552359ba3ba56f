package app

import (
	"context"

	"noteboard/internal/config"
	"noteboard/internal/logger"
	"noteboard/internal/mongo"
	"noteboard/internal/redis"
	"noteboard/internal/session"
)

type Infra struct {
	Mongo *mongo.Client
	Redis *redis.Client // nil when sessions are in-memory
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	mongoClient, err := mongo.New(cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return nil, err
	}

	logger.Info("mongodb ready", nil)

	infra := &Infra{Mongo: mongoClient}

	if cfg.RedisAddr != "" {
		redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}
		infra.Redis = redisClient
		logger.Info("redis ready", nil)
	}

	return infra, nil
}

// sessionStore picks the session backend: Redis when configured,
// otherwise a single-process in-memory store.
func (i *Infra) sessionStore() session.Store {
	if i.Redis != nil {
		return session.NewRedisStore(i.Redis.Client)
	}
	logger.Warn("REDIS_ADDR not set, sessions are in-memory and lost on restart", nil)
	return session.NewMemoryStore()
}

func (i *Infra) close(ctx context.Context) error {
	if i.Redis != nil {
		if err := i.Redis.Close(); err != nil {
			return err
		}
	}
	return i.Mongo.Close(ctx)
}
