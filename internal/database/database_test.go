package database

import (
	"bytes"
	"context"
	"encoding/json"
	"io/fs"
	"testing"
	"time"

	"github.com/RAM-73377/jobportaL/internal/config"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Primary: config.Primary{Env: "test"},
		Database: config.DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Password:        "secret",
			Name:            "jobportal",
			SSLMode:         "disable",
			MaxOpenConns:    8,
			MaxIdleConns:    2,
			ConnMaxLifetime: 600,
			ConnMaxIdleTime: 60,
		},
	}
}

func TestPoolConfig(t *testing.T) {
	poolConfig, err := PoolConfig(testConfig())
	require.NoError(t, err)

	assert.Equal(t, int32(8), poolConfig.MaxConns)
	assert.Equal(t, int32(2), poolConfig.MinConns)
	assert.Equal(t, 10*time.Minute, poolConfig.MaxConnLifetime)
	assert.Equal(t, time.Minute, poolConfig.MaxConnIdleTime)
	assert.Equal(t, "jobportal", poolConfig.ConnConfig.Database)
	assert.Equal(t, uint16(5432), poolConfig.ConnConfig.Port)
}

func TestPoolConfigClampsIdleConns(t *testing.T) {
	cfg := testConfig()
	cfg.Database.MaxOpenConns = 1
	cfg.Database.MaxIdleConns = 5

	poolConfig, err := PoolConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, int32(1), poolConfig.MinConns)
}

func TestEmbeddedMigrations(t *testing.T) {
	subtree, err := Migrations()
	require.NoError(t, err)

	names, err := fs.Glob(subtree, "*.sql")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"001_create_blog_posts.sql",
		"002_create_job_stats.sql",
		"003_create_recent_activities.sql",
	}, names)

	for _, name := range names {
		body, err := fs.ReadFile(subtree, name)
		require.NoError(t, err)
		assert.Contains(t, string(body), "---- create above / drop below ----", name)
	}
}

func TestQueryTracer(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("slow query threshold only", func(t *testing.T) {
		cfg := testConfig()
		cfg.Observability = config.DefaultObservabilityConfig()

		tracer := queryTracer(cfg, &logger, nil)

		slow, ok := tracer.(*slowQueryTracer)
		require.True(t, ok, "got %T", tracer)
		assert.Equal(t, 100*time.Millisecond, slow.threshold)
	})

	t.Run("local environment adds statement logging", func(t *testing.T) {
		cfg := testConfig()
		cfg.Primary.Env = "local"
		cfg.Observability = config.DefaultObservabilityConfig()

		multi, ok := queryTracer(cfg, &logger, nil).(*multiTracer)
		require.True(t, ok)
		assert.Len(t, multi.tracers, 2)
	})

	t.Run("nothing enabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.Observability = config.DefaultObservabilityConfig()
		cfg.Observability.Logging.SlowQueryThreshold = 0

		assert.Nil(t, queryTracer(cfg, &logger, nil))
	})
}

func TestSlowQueryTracer(t *testing.T) {
	newTracer := func(buf *bytes.Buffer, elapsed time.Duration) *slowQueryTracer {
		logger := zerolog.New(buf)
		tracer := newSlowQueryTracer(100*time.Millisecond, &logger)

		start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
		calls := 0
		tracer.now = func() time.Time {
			calls++
			if calls == 1 {
				return start
			}
			return start.Add(elapsed)
		}
		return tracer
	}

	run := func(tracer *slowQueryTracer) {
		ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
		tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})
	}

	t.Run("warns at the threshold", func(t *testing.T) {
		var buf bytes.Buffer
		run(newTracer(&buf, 250*time.Millisecond))

		var line map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "warn", line["level"])
		assert.Equal(t, "slow query", line["message"])
		assert.Equal(t, "SELECT 1", line["sql"])
	})

	t.Run("fast queries are quiet", func(t *testing.T) {
		var buf bytes.Buffer
		run(newTracer(&buf, 10*time.Millisecond))

		assert.Empty(t, buf.String())
	})

	t.Run("end without start is ignored", func(t *testing.T) {
		var buf bytes.Buffer
		newTracer(&buf, time.Second).TraceQueryEnd(context.Background(), nil, pgx.TraceQueryEndData{})

		assert.Empty(t, buf.String())
	})
}
