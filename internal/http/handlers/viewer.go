package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/AgbediaSamuel/traverse-backend-wa/internal/domain"
	"github.com/AgbediaSamuel/traverse-backend-wa/internal/http/middleware"
	"github.com/AgbediaSamuel/traverse-backend-wa/internal/repositories"
	"github.com/AgbediaSamuel/traverse-backend-wa/internal/services"

	"github.com/gin-gonic/gin"
)

// viewerController builds the load controller wired straight to the
// document store; the HTTP fetch path is for viewers running remotely.
func viewerController() services.LoadController {
	env := currentEnv()
	repo := repositories.ItineraryRepository{}
	return services.LoadController{
		APIBase:              env.APIBase,
		TemplateSecret:       env.TemplateSecret,
		AllowedRefererDomain: env.AllowedRefererDomain,
		Fetch: func(_ context.Context, id string) (map[string]any, error) {
			return repo.GetByID(id)
		},
	}
}

func accessRequest(c *gin.Context) services.AccessRequest {
	return services.AccessRequest{
		Referer: c.GetHeader("Referer"),
		Token:   c.Query("token"),
	}
}

// viewerID maps the route param (or the itineraryId query parameter on the
// bare /view route) to the load identifier; "sample" and the empty id both
// select the demo fallback.
func viewerID(c *gin.Context) string {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		id = strings.TrimSpace(c.Query("itineraryId"))
	}
	if id == "sample" {
		return ""
	}
	return id
}

// GET /api/view/:id
// Resolves the document, derives the title, and returns the full page
// sequence for batch rendering.
func ViewItinerary(c *gin.Context) {
	res := viewerController().Load(c.Request.Context(), viewerID(c), accessRequest(c))
	if res.State != services.LoadReady {
		RespondDomainError(c, res.Err)
		return
	}

	pm := services.NewPageModel(res.Itinerary)
	pages := make([]services.PageData, 0, pm.TotalPages())
	for _, desc := range pm.Pages() {
		pages = append(pages, services.RenderPage(res.Itinerary, desc))
	}

	c.JSON(http.StatusOK, gin.H{
		"title":       res.Title,
		"itinerary":   res.Itinerary,
		"total_pages": pm.TotalPages(),
		"pages":       pages,
	})
}

// GET /api/view/:id/pages/:index
func ViewPage(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		RespondDomainError(c, domain.ValidationError{Field: "index", Msg: "must be an integer"})
		return
	}

	res := viewerController().Load(c.Request.Context(), viewerID(c), accessRequest(c))
	if res.State != services.LoadReady {
		RespondDomainError(c, res.Err)
		return
	}

	pm := services.NewPageModel(res.Itinerary)
	if index < 0 || index >= pm.TotalPages() {
		RespondDomainError(c, domain.ValidationError{Field: "index", Msg: "page index out of range"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"title":       res.Title,
		"total_pages": pm.TotalPages(),
		"page":        services.RenderPage(res.Itinerary, pm.PageAt(index)),
	})
}

// GET /api/view/:id/export
// Streams the batch PDF of every page, gated the same way as viewing.
func ExportItinerary(c *gin.Context) {
	ctl := viewerController()
	if !ctl.Allowed(accessRequest(c)) {
		RespondDomainError(c, domain.UnauthorizedError{Msg: "this itinerary is not available"})
		return
	}

	svc := services.ExportService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GeneratePDF(viewerID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
