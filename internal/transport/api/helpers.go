package api

import (
	"github.com/fsdevblog/groph-invest/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

// getUserIDFromContext возвращает id текущего юзера, записанный auth middleware.
// На роутах без AuthRequired вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	id, _ := c.Get(middlewares.CurrentUserIDKey)
	userID, _ := id.(int64)
	return userID
}
