package deps

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pathforward/doorhub/internal/auth"
	"github.com/pathforward/doorhub/internal/domain"
	"github.com/pathforward/doorhub/internal/index"
	"github.com/pathforward/doorhub/internal/logger"
	redisstore "github.com/pathforward/doorhub/internal/store/redis"
	"github.com/pathforward/doorhub/internal/utils"
)

// Pinger is the slice of the database the health endpoints need.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	Logger         logger.Logger
	StartTime      time.Time
	Version        string
	Commit         string
	BuildDate      string
	GoVersion      string
	TimeNow        func() time.Time // for testing, defaults to time.Now
	DefaultLocale  domain.Locale
	Index          *index.CatalogIndex        // in-memory catalog snapshots
	Sessions       *index.SessionTable        // live diagnosis sessions
	RedisClient    *redis.Client              // Redis client connection
	Store          *redisstore.Store          // snapshot cache and quiz results
	DB             Pinger                     // Postgres connectivity for readiness
	Auth           auth.Provider              // nil means auth disabled (dev mode)
	AdminToken     string                     // token for admin-only endpoints
	RefreshTrigger *utils.Debouncer[struct{}] // debounced manual catalog refresh
	AllowedOrigins []string
}

// Now returns the injected clock, falling back to time.Now.
func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now()
}
