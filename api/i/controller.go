package i

import "github.com/gin-gonic/gin"

// Controller registers a group of routes on the router.
type Controller interface {
	// RegisterPublic adds routes that need no game token.
	RegisterPublic(*gin.RouterGroup)
	// RegisterProtected adds routes behind the authorization middleware.
	RegisterProtected(*gin.RouterGroup)
}
