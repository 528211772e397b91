package postgres

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"time"

	"github.com/finanzas-app/finanzas-backend/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool builds a bounded connection pool and verifies it with a ping.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns

	if cfg.SSL {
		tlsCfg, err := tlsConfig(cfg, poolCfg.ConnConfig.Host)
		if err != nil {
			return nil, err
		}
		poolCfg.ConnConfig.TLSConfig = tlsCfg
		for _, fb := range poolCfg.ConnConfig.Fallbacks {
			fb.TLSConfig = tlsCfg
		}
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

func tlsConfig(cfg config.DatabaseConfig, host string) (*tls.Config, error) {
	pem := []byte(cfg.CAPEM)
	if len(pem) == 0 {
		data, err := os.ReadFile(cfg.CAPath)
		if err != nil {
			return nil, fmt.Errorf("read DB_SSL_CA_PATH: %w", err)
		}
		pem = data
	}

	roots := x509.NewCertPool()
	if !roots.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("no certificates found in database CA material")
	}

	return &tls.Config{
		RootCAs:    roots,
		ServerName: host,
		MinVersion: tls.VersionTLS12,
	}, nil
}
