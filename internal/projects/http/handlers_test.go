package http

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildledger/budget-backend/internal/api/errs"
	expdomain "github.com/buildledger/budget-backend/internal/expenses/domain"
	"github.com/buildledger/budget-backend/internal/projects/domain"
	"github.com/buildledger/budget-backend/internal/projects/service"
)

type stubService struct {
	createFn func(ctx context.Context, in service.CreateInput) (*domain.Project, error)
	listFn   func(ctx context.Context) ([]domain.Project, error)
	getFn    func(ctx context.Context, id string) (*domain.ProjectDetail, error)
}

func (s *stubService) Create(ctx context.Context, in service.CreateInput) (*domain.Project, error) {
	return s.createFn(ctx, in)
}

func (s *stubService) List(ctx context.Context) ([]domain.Project, error) {
	return s.listFn(ctx)
}

func (s *stubService) Get(ctx context.Context, id string) (*domain.ProjectDetail, error) {
	return s.getFn(ctx, id)
}

func newRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Register(r.Group("/api/projects"), svc)
	return r
}

func TestCreateProject_Created(t *testing.T) {
	svc := &stubService{
		createFn: func(_ context.Context, in service.CreateInput) (*domain.Project, error) {
			return &domain.Project{
				ID:              "p-1",
				Name:            in.Name,
				ClientName:      in.ClientName,
				EstimatedBudget: 1000,
				RemainingBudget: 1000,
			}, nil
		},
	}
	router := newRouter(svc)

	body := `{"name":"Warehouse extension","clientName":"Acme Builders","estimatedBudget":1000}`
	req := httptest.NewRequest("POST", "/api/projects", strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, nethttp.StatusCreated, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Acme Builders", resp["clientName"])
	assert.Equal(t, 1000.0, resp["estimatedBudget"])
	assert.Equal(t, 0.0, resp["totalExpenses"])
	assert.Equal(t, 1000.0, resp["remainingBudget"])
}

func TestCreateProject_ValidationError(t *testing.T) {
	svc := &stubService{
		createFn: func(_ context.Context, _ service.CreateInput) (*domain.Project, error) {
			return nil, errs.Validation("name, clientName and estimatedBudget are required")
		},
	}
	router := newRouter(svc)

	req := httptest.NewRequest("POST", "/api/projects", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, nethttp.StatusBadRequest, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "name, clientName and estimatedBudget are required", resp["error"])
}

func TestListProjects_OK(t *testing.T) {
	svc := &stubService{
		listFn: func(_ context.Context) ([]domain.Project, error) {
			return []domain.Project{
				{ID: "a", EstimatedBudget: 1000, TotalExpenses: 350.5, RemainingBudget: 649.5},
				{ID: "b", EstimatedBudget: 500, RemainingBudget: 500},
			}, nil
		},
	}
	router := newRouter(svc)

	req := httptest.NewRequest("GET", "/api/projects", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, nethttp.StatusOK, rr.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, 350.5, resp[0]["totalExpenses"])
	assert.Equal(t, 649.5, resp[0]["remainingBudget"])
}

func TestGetProject_NotFound(t *testing.T) {
	svc := &stubService{
		getFn: func(_ context.Context, _ string) (*domain.ProjectDetail, error) {
			return nil, errs.ErrProjectNotFound
		},
	}
	router := newRouter(svc)

	req := httptest.NewRequest("GET", "/api/projects/missing", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, nethttp.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Project not found"}`, rr.Body.String())
}

func TestGetProject_EmptyExpenseListMarshalsAsArray(t *testing.T) {
	svc := &stubService{
		getFn: func(_ context.Context, id string) (*domain.ProjectDetail, error) {
			return &domain.ProjectDetail{
				Project:  domain.Project{ID: id, EstimatedBudget: 500, RemainingBudget: 500},
				Expenses: []expdomain.Expense{},
			}, nil
		},
	}
	router := newRouter(svc)

	req := httptest.NewRequest("GET", "/api/projects/a", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, nethttp.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"expenses":[]`)
}
