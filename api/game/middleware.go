package gameapi

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/pickle-maze/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// ContextGameID is the key used to store the token's game id in the Gin context.
	ContextGameID = "gameID"

	tokenQueryParam = "token"
)

// Authoriz checks the game token and stores the game it grants access to.
// The token comes from the Authorization header or, for websocket clients
// that cannot set headers, from the token query parameter.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing game token"})
			return
		}

		gameID, err := ts.Decode(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid game token"})
			return
		}

		c.Set(ContextGameID, gameID)
		c.Next()
	}
}

// bearerToken extracts the raw token from the request.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		token := c.Query(tokenQueryParam)
		return token, token != ""
	}

	// Split the "Bearer" prefix from the token.
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
