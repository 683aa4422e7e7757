//go:build !embed

package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// setupStaticFiles serves the front-end from ./web so edits show up without
// a rebuild
func setupStaticFiles(router *gin.Engine, logger *zap.Logger) {
	logger.Info("using local filesystem for frontend assets (development mode)", zap.String("dir", "./web"))
	serveFrontend(router, os.DirFS("web"))
}
