// internal/api/responses/responses.go
package responses

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

// InitLogger inicializa o logger estruturado global da API.
func InitLogger() {
	logger = zap.Must(zap.NewProduction())
}

// Logger expõe o logger para os demais pacotes da API.
func Logger() *zap.Logger {
	return logger
}

// Error registra a falha e devolve a notificação de erro ao usuário.
func Error(c *gin.Context, status int, message string, details ...string) {
	fields := []zap.Field{
		zap.Int("status", status),
		zap.String("path", c.FullPath()),
	}
	if len(details) > 0 {
		fields = append(fields, zap.Strings("details", details))
	}
	logger.Warn(message, fields...)

	body := gin.H{"error": message}
	if len(details) > 0 {
		body["details"] = details
	}
	c.JSON(status, body)
}

// Success devolve uma notificação de sucesso com payload opcional.
func Success(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}
