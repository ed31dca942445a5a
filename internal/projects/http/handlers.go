package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buildledger/budget-backend/internal/api/errs"
	"github.com/buildledger/budget-backend/internal/projects/domain"
	"github.com/buildledger/budget-backend/internal/projects/service"
)

// Service is what the handlers need from the project layer.
type Service interface {
	Create(ctx context.Context, in service.CreateInput) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id string) (*domain.ProjectDetail, error)
}

type Handler struct {
	svc Service
}

func Register(rg *gin.RouterGroup, svc Service) {
	h := &Handler{svc: svc}

	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
}

type createReq struct {
	Name            string `json:"name"`
	ClientName      string `json:"clientName"`
	EstimatedBudget any    `json:"estimatedBudget"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	p, err := h.svc.Create(c.Request.Context(), service.CreateInput{
		Name:            req.Name,
		ClientName:      req.ClientName,
		EstimatedBudget: req.EstimatedBudget,
	})
	if err != nil {
		errs.Write(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		errs.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		errs.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
