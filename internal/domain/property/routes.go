package property

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	properties := rg.Group("/properties")
	{
		properties.GET("", h.GetProperties)
		properties.GET("/featured", h.GetFeatured)
		properties.GET("/search", h.SearchProperties)
		properties.GET("/:id", h.GetProperty)
	}

	agents := rg.Group("/agents")
	{
		agents.GET("", h.GetAgents)
		agents.GET("/:id", h.GetAgent)
	}

	rg.GET("/property-categories", h.GetCategories)
	rg.GET("/transaction-types", h.GetTransactionTypes)
	rg.POST("/listings/drafts", h.SubmitDraft)
}
