package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Idempotency guards POST endpoints against duplicate submissions when the
// client supplies an Idempotency-Key header. A key that already completed
// replays the stored response; a key still in flight is rejected. The handler
// owns the second half of the choreography: it releases the lock when done
// and stores the response under the cache key on success. Without the header
// the request passes through unchanged, preserving the non-idempotent create
// contract.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		username := c.GetString("username")

		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), username, idempKey)
		lockKey := cacheKey + ":lock"

		if val, err := rdb.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			var cached any
			if json.Unmarshal([]byte(val), &cached) == nil {
				c.AbortWithStatusJSON(http.StatusOK, cached)
				return
			}
		}

		// Short expiry so a crashed server cannot hold the lock forever.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "A request with this idempotency key is already in flight",
			})
			return
		}

		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)

		c.Next()
	}
}
