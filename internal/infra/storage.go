package infra

import (
	"context"
	"errors"
	"fmt"

	"github.com/umalmyha/inquiries/internal/cache"
	"github.com/umalmyha/inquiries/internal/config"
	"github.com/umalmyha/inquiries/internal/handlers"
	"github.com/umalmyha/inquiries/internal/repository"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Storage holds selected inquiry repository together with optional cache
type Storage struct {
	InquiryRps   repository.InquiryRepository
	InquiryCache cache.InquiryCache
	Checks       map[string]handlers.HealthCheck
	closers      []func(context.Context) error
}

// NewStorage connects to backend chosen by storage driver and to redis if cache is enabled
func NewStorage(ctx context.Context, cfg config.Config) (*Storage, error) {
	s := &Storage{Checks: make(map[string]handlers.HealthCheck)}
	if err := s.connect(ctx, cfg); err != nil {
		_ = s.Close(context.Background())
		return nil, err
	}
	return s, nil
}

func (s *Storage) connect(ctx context.Context, cfg config.Config) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.StorageCfg.ConnectTimeout)
	defer cancel()

	switch cfg.StorageCfg.Driver {
	case config.DriverMemory:
		s.InquiryRps = repository.NewMemoryInquiryRepository()
	case config.DriverPostgres:
		pool, err := Postgresql(ctx, cfg.PostgresCfg)
		if err != nil {
			return err
		}
		s.closers = append(s.closers, func(context.Context) error {
			pool.Close()
			return nil
		})
		s.Checks["postgres"] = pool.Ping
		s.InquiryRps = repository.NewPostgresInquiryRepository(pool)
	case config.DriverMongo:
		client, err := Mongodb(ctx, cfg.MongoCfg)
		if err != nil {
			return err
		}
		s.closers = append(s.closers, client.Disconnect)
		s.Checks["mongo"] = func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		}
		s.InquiryRps = repository.NewMongoInquiryRepository(client, cfg.MongoCfg.Database)
	case config.DriverSqlite:
		db, err := Sqlite(ctx, cfg.SqliteCfg)
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to get sqlite connection - %w", err)
		}
		s.closers = append(s.closers, func(context.Context) error {
			return sqlDB.Close()
		})
		s.Checks["sqlite"] = sqlDB.PingContext
		s.InquiryRps = repository.NewSqliteInquiryRepository(db)
	default:
		return fmt.Errorf("unsupported storage driver %q", cfg.StorageCfg.Driver)
	}

	if cfg.RedisCfg.Enabled {
		client, err := Redis(ctx, cfg.RedisCfg)
		if err != nil {
			return err
		}
		s.closers = append(s.closers, func(context.Context) error {
			return client.Close()
		})
		s.Checks["redis"] = func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}
		s.InquiryCache = cache.NewRedisInquiryCache(client, cfg.RedisCfg.TimeToLive)
	}

	return nil
}

// Close releases every opened connection in reverse order
func (s *Storage) Close(ctx context.Context) error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
