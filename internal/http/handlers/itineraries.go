package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/AgbediaSamuel/traverse-backend-wa/internal/domain"
	"github.com/AgbediaSamuel/traverse-backend-wa/internal/http/middleware"
	"github.com/AgbediaSamuel/traverse-backend-wa/internal/repositories"
	"github.com/AgbediaSamuel/traverse-backend-wa/internal/services"
	"github.com/AgbediaSamuel/traverse-backend-wa/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GET /api/itineraries?page=&pageSize=
func ListItineraries(c *gin.Context) {
	p := domain.Pagination{
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "pageSize", 20),
	}

	repo := repositories.ItineraryRepository{}
	items, total, err := repo.List(p)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	p.Total = total
	c.JSON(http.StatusOK, gin.H{"itineraries": items, "pagination": p})
}

func queryInt(c *gin.Context, key string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(c.Query(key)))
	if err != nil {
		return fallback
	}
	return n
}

// GET /api/itineraries/:id
// The sample id serves the built-in demo document bare; stored documents are
// wrapped in the {document: ...} envelope.
func GetItinerary(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "sample" {
		c.JSON(http.StatusOK, services.DemoDocument())
		return
	}

	repo := repositories.ItineraryRepository{}
	doc, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"document": doc})
}

// POST /api/itineraries
// Accepts an arbitrary raw document. An "id" field is honored; otherwise a
// fresh one is assigned.
func SaveItinerary(c *gin.Context) {
	var doc map[string]any
	if !BindJSONOrError(c, &doc) {
		return
	}

	id := ""
	if s, ok := doc["id"].(string); ok {
		id = strings.TrimSpace(s)
	}
	if id == "" {
		id = uuid.NewString()
	}
	delete(doc, "id")

	repo := repositories.ItineraryRepository{}
	if err := repo.Save(id, doc); err != nil {
		RespondDomainError(c, err)
		return
	}

	msg := "id=" + id
	if rc, ok := middleware.AuthContext(c); ok {
		msg = fmt.Sprintf("id=%s user=%d", id, rc.UserID)
	}
	utils.LogEvent(middleware.GetRequestID(c), "itineraries", "save", msg)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// DELETE /api/itineraries/:id
func DeleteItinerary(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	repo := repositories.ItineraryRepository{}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}

	msg := "id=" + id
	if rc, ok := middleware.AuthContext(c); ok {
		msg = fmt.Sprintf("id=%s user=%d", id, rc.UserID)
	}
	utils.LogEvent(middleware.GetRequestID(c), "itineraries", "delete", msg)
	c.JSON(http.StatusOK, gin.H{"message": "itinerary deleted"})
}
