package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/wikipath/internal/models"
	"github.com/persistorai/wikipath/internal/pathfinder"
)

// maxTitleLength caps the from/to query parameters. MediaWiki titles are at
// most 255 bytes; URLs get some extra room.
const maxTitleLength = 1024

// PathHandler serves the path search endpoint.
type PathHandler struct {
	finder PathFinder
	log    *logrus.Logger
}

// NewPathHandler creates a PathHandler with the given finder and logger.
func NewPathHandler(finder PathFinder, log *logrus.Logger) *PathHandler {
	return &PathHandler{finder: finder, log: log}
}

// Find handles GET /api/v1/path?from=&to=&strategy=&depth=.
//
// An exhausted search is not an error: it returns 200 with found=false.
func (h *PathHandler) Find(c *gin.Context) {
	req, ok := parsePathRequest(c)
	if !ok {
		return
	}

	result, err := h.finder.FindPath(c.Request.Context(), req)
	if err != nil {
		h.respondSearchError(c, err)

		return
	}

	c.JSON(http.StatusOK, result)
}

func parsePathRequest(c *gin.Context) (models.PathRequest, bool) {
	req := models.PathRequest{
		From: c.Query("from"),
		To:   c.Query("to"),
	}

	if len(req.From) > maxTitleLength || len(req.To) > maxTitleLength {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "title exceeds maximum length")

		return req, false
	}

	strategy, err := models.ParseStrategy(c.Query("strategy"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return req, false
	}
	req.Strategy = strategy

	depth, err := strconv.Atoi(c.DefaultQuery("depth", strconv.Itoa(models.DefaultDepth)))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "depth must be an integer")

		return req, false
	}
	req.Depth = depth

	return req, true
}

func (h *PathHandler) respondSearchError(c *gin.Context, err error) {
	switch {
	case models.IsValidationError(err):
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())
	case errors.Is(err, pathfinder.ErrNotFound):
		respondError(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		respondError(c, http.StatusGatewayTimeout, ErrCodeTimeout, "search timed out")
	case errors.Is(err, context.Canceled):
		// Client went away; nobody reads the response.
		c.Status(499)
	default:
		h.log.WithError(err).Error("path search failed")
		respondError(c, http.StatusBadGateway, ErrCodeUpstreamError, "upstream wiki request failed")
	}
}
