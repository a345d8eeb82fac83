package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"food-api/db"
)

const (
	connKey      = "dbConn"
	requestIDKey = "requestID"
)

// connProvider hands out one connection per request together with its
// release func. The production provider wraps the pgx pool.
type connProvider interface {
	acquire(ctx context.Context) (db.Querier, func(), error)
}

type poolProvider struct {
	pool *pgxpool.Pool
}

func (p poolProvider) acquire(ctx context.Context) (db.Querier, func(), error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, nil, err
	}
	return conn, conn.Release, nil
}

// acquireConn checks one connection out of the pool for the duration of the
// request. Acquisition is the only place with a timeout; pool exhaustion
// surfaces here as a generic server error before any handler runs. The
// deferred release covers every exit path, including panics recovered
// further up the chain.
func acquireConn(p connProvider, timeout time.Duration, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		conn, release, err := p.acquire(ctx)
		if err != nil {
			logger.Error("acquire connection",
				zap.Error(err),
				zap.String("path", c.FullPath()),
				zap.String("request_id", c.GetString(requestIDKey)),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				errorResponse{Error: "internal server error"})
			return
		}
		defer release()

		c.Set(connKey, conn)
		c.Next()
	}
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// conn returns the connection the middleware attached to this request.
func conn(c *gin.Context) db.Querier {
	return c.MustGet(connKey).(db.Querier)
}
