// Package dockertester spins up a throwaway Postgres container for
// integration tests.
package dockertester

import (
	"fmt"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	dbUser     = "test"
	dbPassword = "test"
	dbName     = "bolao_test"
)

type Tester struct {
	Pool     *dockertest.Pool
	Resource *dockertest.Resource
	DB       *gorm.DB
}

// New starts a Postgres container and waits until it accepts connections.
func New() (*Tester, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("dockertest.NewPool -> %w", err)
	}

	if err = pool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("pool.Client.Ping -> %w", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=" + dbUser,
			"POSTGRES_PASSWORD=" + dbPassword,
			"POSTGRES_DB=" + dbName,
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("pool.RunWithOptions -> %w", err)
	}

	resource.Expire(180)
	pool.MaxWait = 90 * time.Second

	var db *gorm.DB
	if err = pool.Retry(func() error {
		dsn := fmt.Sprintf("host=localhost port=%v user=%v password=%v dbname=%v sslmode=disable",
			resource.GetPort("5432/tcp"), dbUser, dbPassword, dbName)

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return err
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}

		return sqlDB.Ping()
	}); err != nil {
		return nil, fmt.Errorf("pool.Retry -> %w", err)
	}

	return &Tester{
		Pool:     pool,
		Resource: resource,
		DB:       db,
	}, nil
}

func (t *Tester) Close() error {
	if err := t.Pool.Purge(t.Resource); err != nil {
		return fmt.Errorf("t.Pool.Purge -> %w", err)
	}

	return nil
}
