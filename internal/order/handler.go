package order

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hungryhouse/internal/billing"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Place(c *gin.Context) {
	var req struct {
		CustomerName string         `json:"customer_name"`
		TableID      string         `json:"table_id"`
		Lines        []billing.Line `json:"lines"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	createdBy := c.GetString("userID")

	placed, err := h.service.PlaceOrder(
		c.Request.Context(),
		req.CustomerName,
		req.TableID,
		req.Lines,
		createdBy,
	)
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrEmptyOrder),
			errors.Is(err, billing.ErrInvalidLine),
			errors.Is(err, ErrUnknownTable):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, placed)
}

func (h *Handler) List(c *gin.Context) {
	orders, err := h.service.ListOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if orders == nil {
		orders = []Order{}
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *Handler) Get(c *gin.Context) {
	o, err := h.service.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, o)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
}

func (h *Handler) Invoice(c *gin.Context) {
	inv, err := h.service.GenerateInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, inv)
}
