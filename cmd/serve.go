package cmd

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/kmehta-dev/w2-review-agent/config"
	"github.com/kmehta-dev/w2-review-agent/handler"
	"github.com/kmehta-dev/w2-review-agent/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the W-2 review HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		w2Service := service.NewW2Service(newDocumentService(cfg))
		w2Handler := handler.NewW2Handler(w2Service)

		router := gin.Default()
		router.MaxMultipartMemory = cfg.MaxFileSize

		router.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "healthy",
				"service": "W-2 Review Agent",
			})
		})

		api := router.Group("/api/v1")
		{
			w2Routes := api.Group("/w2")
			{
				w2Routes.POST("/summary", w2Handler.SummarizeW2)
				w2Routes.POST("/validate", w2Handler.ValidateW2)
			}
		}

		log.Printf("Starting W-2 Review Agent on port %s", cfg.ServerPort)
		return router.Run(":" + cfg.ServerPort)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
