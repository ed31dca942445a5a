package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buildledger/budget-backend/internal/api/errs"
	"github.com/buildledger/budget-backend/internal/expenses/domain"
)

// Service is what the handlers need from the expense layer.
type Service interface {
	Create(ctx context.Context, projectID string, in domain.Input) (*domain.Expense, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.Expense, error)
	Update(ctx context.Context, id string, in domain.Input) (*domain.Expense, error)
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	svc Service
}

func Register(rg *gin.RouterGroup, svc Service) {
	h := &Handler{svc: svc}

	rg.POST("/:projectId", h.create)
	rg.GET("/project/:projectId", h.listByProject)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	var req domain.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	e, err := h.svc.Create(c.Request.Context(), c.Param("projectId"), req)
	if err != nil {
		errs.Write(c, err)
		return
	}

	c.JSON(http.StatusCreated, e)
}

func (h *Handler) listByProject(c *gin.Context) {
	items, err := h.svc.ListByProject(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		errs.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) update(c *gin.Context) {
	var req domain.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	e, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		errs.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, e)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		errs.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
