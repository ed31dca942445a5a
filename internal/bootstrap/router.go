package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	httpapi "github.com/buildledger/budget-backend/internal/api/http"
	"github.com/buildledger/budget-backend/internal/api/http/middleware"
	exphttp "github.com/buildledger/budget-backend/internal/expenses/http"
	exprepo "github.com/buildledger/budget-backend/internal/expenses/repository"
	expservice "github.com/buildledger/budget-backend/internal/expenses/service"
	projhttp "github.com/buildledger/budget-backend/internal/projects/http"
	projrepo "github.com/buildledger/budget-backend/internal/projects/repository"
	projservice "github.com/buildledger/budget-backend/internal/projects/service"
)

type RouterDeps struct {
	ServiceName  string
	Version      string
	RateLimitRPS int
	DB           *pgxpool.Pool
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.RateLimit(dep.RateLimitRPS))
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")

	projectRepo := projrepo.NewProjectRepository(dep.DB)
	expenseRepo := exprepo.NewExpenseRepository(dep.DB)

	projectSvc := projservice.NewProjectService(projectRepo, expenseRepo)
	expenseSvc := expservice.NewExpenseService(expenseRepo, projectRepo)

	projhttp.Register(api.Group("/projects"), projectSvc)
	exphttp.Register(api.Group("/expenses"), expenseSvc)

	return r
}
