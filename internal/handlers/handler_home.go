package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getStatus godoc
// @Summary Show the status of the server.
// @Description get the status of the server.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /status [get]
func getStatus(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "ERP Backoffice API v1"})
}

// registerStatusRoutes registers the authenticated '/status' route.
func registerStatusRoutes(group *gin.RouterGroup) {
	group.GET("/status", getStatus)
}
