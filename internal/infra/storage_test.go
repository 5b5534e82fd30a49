package infra

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/inquiries/internal/config"
	"github.com/umalmyha/inquiries/internal/model"
)

func TestNewStorage(t *testing.T) {
	ctx := context.Background()

	t.Log("memory storage")
	{
		cfg := config.Config{StorageCfg: config.StorageCfg{Driver: config.DriverMemory, ConnectTimeout: time.Second}}
		s, err := NewStorage(ctx, cfg)
		require.NoError(t, err, "failed to build memory storage")
		require.NotNil(t, s.InquiryRps)
		require.Nil(t, s.InquiryCache, "cache must be disabled")
		require.Empty(t, s.Checks)
		require.NoError(t, s.Close(ctx))
	}

	t.Log("sqlite storage")
	{
		cfg := config.Config{
			StorageCfg: config.StorageCfg{Driver: config.DriverSqlite, ConnectTimeout: 5 * time.Second},
			SqliteCfg:  config.SqliteCfg{Path: filepath.Join(t.TempDir(), "inquiries.db")},
		}
		s, err := NewStorage(ctx, cfg)
		require.NoError(t, err, "failed to build sqlite storage")
		require.Contains(t, s.Checks, "sqlite")
		require.NoError(t, s.Checks["sqlite"](ctx), "sqlite must respond")

		i := &model.Inquiry{
			ID:          "3b2d1c9e-8f0a-4f7e-9a55-6c1d2e3f4a5b",
			FirstName:   "Jane",
			LastName:    "Doe",
			Email:       "jane@example.com",
			InquiryType: model.InquiryTypeGeneral,
			Message:     "Hi",
			CreatedAt:   time.Now().UTC().Truncate(time.Millisecond),
		}
		require.NoError(t, s.InquiryRps.Create(ctx, i), "failed to create inquiry")

		found, err := s.InquiryRps.FindByID(ctx, i.ID)
		require.NoError(t, err)
		require.Equal(t, i, found)
		require.NoError(t, s.Close(ctx))
	}

	t.Log("unsupported driver")
	{
		cfg := config.Config{StorageCfg: config.StorageCfg{Driver: "cassandra", ConnectTimeout: time.Second}}
		_, err := NewStorage(ctx, cfg)
		require.Error(t, err, "unsupported driver must be rejected")
	}
}

func TestLogger(t *testing.T) {
	level, formatter := logrus.GetLevel(), logrus.StandardLogger().Formatter
	t.Cleanup(func() {
		logrus.SetLevel(level)
		logrus.SetFormatter(formatter)
	})

	t.Log("valid configuration")
	{
		log, err := Logger(config.LogCfg{Level: "debug", Format: config.LogFormatJSON})
		require.NoError(t, err)
		require.True(t, log.IsLevelEnabled(logrus.DebugLevel), "debug level must be enabled")
	}

	t.Log("invalid level")
	{
		_, err := Logger(config.LogCfg{Level: "loud", Format: config.LogFormatText})
		require.Error(t, err)
	}
}
