package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peds-emergency-server/internal/domain"
)

func TestConnectionDSN(t *testing.T) {
	cfg := &domain.DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		Database: "peds_emergency",
		Username: "assessor",
		Password: "secret",
		SSLMode:  "require",
	}

	dsn := ConnectionDSN(cfg)

	assert.Equal(t,
		"host=db.internal port=5433 dbname=peds_emergency user=assessor password=secret sslmode=require",
		dsn)
}
