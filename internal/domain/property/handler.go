package property

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"immoplace/internal/pkg/response"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

/* ---------- PROPERTY HANDLERS ---------- */

// GetProperties lists the catalog filtered by the query parameters, ranked
// premium first then most recently updated, one page at a time.
// @Router /api/v1/properties [get]
func (h *Handler) GetProperties(c *gin.Context) {
	filters, invalid := ParseFilters(c.Query)
	if invalid != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_FILTERS", "Invalid search filters", invalid)
		return
	}

	properties, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		handleError(c, err)
		return
	}

	pagination := parsePage(c).withTotal(len(properties))
	start, end := pagination.Bounds()

	response.Success(c, http.StatusOK, gin.H{
		"properties": NewPropertyResponses(properties[start:end]),
		"pagination": pagination,
		"filters":    filters.Params(),
	})
}

// @Router /api/v1/properties/featured [get]
func (h *Handler) GetFeatured(c *gin.Context) {
	properties, err := h.service.Featured(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"properties": NewPropertyResponses(properties),
	})
}

// @Router /api/v1/properties/search [get]
func (h *Handler) SearchProperties(c *gin.Context) {
	query := c.Query("q")

	properties, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"query":      query,
		"properties": NewPropertyResponses(properties),
	})
}

// @Router /api/v1/properties/{id} [get]
func (h *Handler) GetProperty(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"property": NewPropertyResponse(*p),
	})
}

/* ---------- AGENT HANDLERS ---------- */

// @Router /api/v1/agents [get]
func (h *Handler) GetAgents(c *gin.Context) {
	agents, err := h.service.Agents(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"agents": agents,
	})
}

// GetAgent returns one agent with their listings.
// @Router /api/v1/agents/{id} [get]
func (h *Handler) GetAgent(c *gin.Context) {
	id := c.Param("id")

	agent, err := h.service.Agent(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	listings, err := h.service.AgentListings(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"agent":      agent,
		"properties": NewPropertyResponses(listings),
	})
}

/* ---------- REFERENCE DATA ---------- */

// @Router /api/v1/property-categories [get]
func (h *Handler) GetCategories(c *gin.Context) {
	options := make([]OptionResponse, len(Categories))
	for i, cat := range Categories {
		options[i] = OptionResponse{Value: string(cat), Label: CategoryLabel(cat)}
	}
	response.Success(c, http.StatusOK, gin.H{"categories": options})
}

// @Router /api/v1/transaction-types [get]
func (h *Handler) GetTransactionTypes(c *gin.Context) {
	options := make([]OptionResponse, len(TransactionTypes))
	for i, t := range TransactionTypes {
		options[i] = OptionResponse{Value: string(t), Label: TransactionLabel(t)}
	}
	response.Success(c, http.StatusOK, gin.H{"transaction_types": options})
}

/* ---------- DRAFTS ---------- */

// SubmitDraft accepts a listing from the creation wizard. The draft is
// validated and acknowledged but not published.
// @Router /api/v1/listings/drafts [post]
func (h *Handler) SubmitDraft(c *gin.Context) {
	var req DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Request body must be a JSON listing draft")
		return
	}

	receipt, err := h.service.SubmitDraft(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusAccepted, gin.H{
		"draft": receipt,
	})
}

/* ---------- HELPERS ---------- */

type pageRequest struct {
	page  int
	limit int
}

// parsePage reads page and limit; out of range values fall back to defaults.
func parsePage(c *gin.Context) pageRequest {
	p := pageRequest{page: 1, limit: defaultPageLimit}

	if limit := c.Query("limit"); limit != "" {
		if val, err := strconv.Atoi(limit); err == nil && val > 0 && val <= maxPageLimit {
			p.limit = val
		}
	}
	if page := c.Query("page"); page != "" {
		if val, err := strconv.Atoi(page); err == nil && val > 0 {
			p.page = val
		}
	}
	return p
}

func (p pageRequest) withTotal(total int) response.Pagination {
	return response.NewPagination(p.page, p.limit, total)
}

func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var verr *ValidationError

	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
	case errors.Is(err, ErrAgentNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Agent not found")
	case errors.Is(err, ErrUnavailable):
		log.Printf("catalog_unavailable path=%s error=%q", c.Request.URL.Path, err.Error())
		response.Unavailable(c, "Catalog temporarily unavailable, please retry")
	case errors.As(err, &verr) && errors.Is(err, ErrInvalidDraft):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Listing draft is invalid", verr.Fields)
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
