package http

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/stackboard/stackboard/internal/auth"
	"github.com/stackboard/stackboard/internal/cache"
	"github.com/stackboard/stackboard/internal/config"
	"github.com/stackboard/stackboard/internal/http/handlers"
	"github.com/stackboard/stackboard/internal/http/middlewares"
	"github.com/stackboard/stackboard/internal/observability"
	"github.com/stackboard/stackboard/internal/repo/postgres"
)

const maxBodyBytes = 1 << 20 // 1 MiB request body cap

func NewRouter(cfg config.Config, log *slog.Logger, pool *pgxpool.Pool, rdb *redis.Client) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// metrics registry for this router instance
	reg := prometheus.NewRegistry()
	prom := observability.NewProm(reg)

	// middleware

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.MaxBodyBytes(maxBodyBytes))
	r.Use(prom.GinHandleMiddleware())
	r.Use(otelgin.Middleware("stackboard-api"))

	// health
	ping := func() error {
		if pool == nil {
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
		defer cancel()

		return pool.Ping(ctx)
	}

	h := handlers.NewHealthHandler(ping)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// wire up repositories
	studentsRepo := postgres.NewStudentsRepo(pool, prom)
	employeesRepo := postgres.NewEmployeesRepo(pool, prom)
	tasksRepo := postgres.NewTasksRepo(pool, prom)
	expensesRepo := postgres.NewExpensesRepo(pool, prom)
	productsRepo := postgres.NewProductsRepo(pool, prom)
	usersRepo := postgres.NewUsersRepo(pool, prom)

	totals := cache.NewTotals(rdb, cfg.TotalsTTL, log, prom)
	jwtMgr := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	// wire up handlers
	studentsHandler := handlers.NewStudentsHandler(studentsRepo)
	employeesHandler := handlers.NewEmployeesHandler(employeesRepo)
	tasksHandler := handlers.NewTasksHandler(tasksRepo)
	expensesHandler := handlers.NewExpensesHandler(expensesRepo, totals)
	productsHandler := handlers.NewProductsHandler(productsRepo, totals)
	authHandler := handlers.NewAuthHandler(usersRepo, jwtMgr)

	authMW := middlewares.NewAuthMiddleware(jwtMgr)
	loginLimiter := middlewares.NewRateLimiter(10, time.Minute)

	api := r.Group("/api")
	api.Use(middlewares.RequireJSON())

	api.POST("/student", studentsHandler.CreateStudent)
	api.GET("/student", studentsHandler.ListStudents)
	api.PUT("/student/:id", studentsHandler.UpdateStudent)
	api.DELETE("/student/:id", studentsHandler.DeleteStudent)

	api.POST("/employee", employeesHandler.CreateEmployee)
	api.GET("/employee", employeesHandler.ListEmployees)
	api.PUT("/employee/:id", employeesHandler.UpdateEmployee)
	api.DELETE("/employee/:id", employeesHandler.DeleteEmployee)

	api.POST("/task", tasksHandler.CreateTask)
	api.GET("/task", tasksHandler.ListTasks)
	api.PUT("/task/:id", tasksHandler.UpdateTask)
	api.DELETE("/task/:id", tasksHandler.DeleteTask)

	api.POST("/expense", expensesHandler.CreateExpense)
	api.GET("/expense", expensesHandler.ListExpenses)
	api.GET("/expense/total", expensesHandler.ExpenseTotal)
	api.PUT("/expense/:id", expensesHandler.UpdateExpense)
	api.DELETE("/expense/:id", expensesHandler.DeleteExpense)

	api.POST("/product", productsHandler.CreateProduct)
	api.GET("/product", productsHandler.ListProducts)
	api.GET("/product/total", productsHandler.TotalStockValue)
	api.PUT("/product/:id", productsHandler.UpdateProduct)
	api.DELETE("/product/:id", productsHandler.DeleteProduct)

	api.POST("/register", loginLimiter.RateLimiterMiddleware(middlewares.KeyByIP), authHandler.Register)
	api.POST("/login", loginLimiter.RateLimiterMiddleware(middlewares.KeyByIP), authHandler.Login)
	api.GET("/profile", authMW.RequireAuth(), authHandler.Profile)

	return r
}
