package ingest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	pipeline *Pipeline
	creator  ItemCreator
}

func NewHandler(pipeline *Pipeline, creator ItemCreator) *Handler {
	return &Handler{pipeline: pipeline, creator: creator}
}

// Parse runs the bulk pipeline over raw menu text and returns the
// review list. Failed lines stay in the list for the reviewer to edit
// or drop; nothing is persisted here.
func (h *Handler) Parse(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	list, err := h.pipeline.Run(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, ErrNoLines) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"outcomes":  list.Outcomes,
		"items":     len(list.Items()),
		"failed":    list.FailedCount(),
		"processed": len(list.Outcomes),
	})
}

// CommitBatch persists the reviewed items and reports per-item results.
func (h *Handler) CommitBatch(c *gin.Context) {
	var req struct {
		Items []ReviewItem `json:"items"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no items to commit"})
		return
	}

	result := Commit(c.Request.Context(), h.creator, req.Items)

	status := http.StatusCreated
	if result.Created < result.Total {
		// Partial failure is surfaced, never swallowed.
		status = http.StatusMultiStatus
	}

	c.JSON(status, result)
}
