//go:build embed

package main

import (
	"propsearch/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// setupStaticFiles serves the front-end compiled into the binary
func setupStaticFiles(router *gin.Engine, logger *zap.Logger) {
	logger.Info("using embedded frontend assets")
	serveFrontend(router, web.Assets)
}
