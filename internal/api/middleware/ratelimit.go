// internal/api/middleware/ratelimit.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit segura o fluxo de requisições da rota. Usado na importação de
// planilhas, onde cada requisição decodifica um arquivo inteiro.
func RateLimit(rps rate.Limit, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rps, burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Muitas requisições, tente novamente em instantes"})
			return
		}
		c.Next()
	}
}
