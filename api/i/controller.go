package i

import "github.com/gin-gonic/gin"

// Controller registers a component's routes on the shared router.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
	RegisterProtected(*gin.RouterGroup)
}
