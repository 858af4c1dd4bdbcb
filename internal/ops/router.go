// Package ops exposes a small HTTP surface for operators: liveness and a few
// ledger counters. It is not part of the chat command surface.
package ops

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/paxosraft/quorumbot/internal/domain"
)

const DefaultServiceTimeout = 3 * time.Second

const (
	HealthRoute = "/healthz"
	StatsRoute  = "/stats"
)

//go:generate mockgen -source=router.go -destination=mocks/mocks.go -package=mocks

// Pinger is satisfied by pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type StatsProvider interface {
	Stats(ctx context.Context) (*domain.Stats, error)
}

type RouterArgs struct {
	Logger *logrus.Logger
	DB     Pinger
	Stats  StatsProvider
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	l := args.Logger.WithField("component", "ops")

	r.GET(HealthRoute, func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
		defer cancel()

		if err := args.DB.Ping(ctx); err != nil {
			l.WithError(err).Error("health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET(StatsRoute, func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
		defer cancel()

		stats, err := args.Stats.Stats(ctx)
		if err != nil {
			l.WithError(err).Error("collecting stats failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"users":  stats.Users,
			"trades": stats.Trades,
		})
	})

	return r
}
