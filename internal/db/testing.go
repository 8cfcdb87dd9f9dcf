package db

import (
	"context"
	"os"
	"testing"

	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"

	"remindu/internal/db/migrations"
)

// CreateTestPool connects to TEST_POSTGRESQL_URL with the schema applied.
// The test is skipped when the variable is not set.
func CreateTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	connString := os.Getenv("TEST_POSTGRESQL_URL")
	if connString == "" {
		t.Skip("TEST_POSTGRESQL_URL is not set.")
	}
	if err := migrations.UpPostgres(connString); err != nil {
		t.Fatalf("Could not apply DB migrations %v.", err)
	}

	pool, err := pgxpool.Connect(context.Background(), connString)
	if err != nil {
		t.Fatal("Could not connect to the database.")
	}
	t.Cleanup(pool.Close)
	TruncateTables(t, pool)
	return pool
}

func TruncateTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), "TRUNCATE kv")
	if err != nil {
		t.Fatal("Could not truncate DB tables.")
	}
}

// CreateTestRedis connects to TEST_REDIS_URL and flushes the database.
// The test is skipped when the variable is not set.
func CreateTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL is not set.")
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		t.Fatalf("Could not parse redis url %v.", err)
	}
	client := redis.NewClient(opt)
	if err := client.FlushDB(context.Background()).Err(); err != nil {
		t.Fatalf("Could not flush redis %v.", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}
