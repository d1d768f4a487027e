package app

import (
	"context"
	"net/http"

	"newsapi/internal/config"
	"newsapi/internal/db"
	"newsapi/internal/handlers"
	"newsapi/internal/middleware"
	"newsapi/internal/repository"
	"newsapi/internal/routes"
	"newsapi/internal/services"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App owns the router and the connection pool behind it.
type App struct {
	Router *mux.Router
	pool   *pgxpool.Pool
}

func InitApp(ctx context.Context, cfg *config.Config) (*App, error) {
	pool, err := db.NewPostgresConnection(ctx, cfg)
	if err != nil {
		return nil, err
	}

	router, err := NewRouter(pool)
	if err != nil {
		pool.Close()
		return nil, err
	}

	return &App{Router: router, pool: pool}, nil
}

// NewRouter wires repositories, services and handlers over conn.
func NewRouter(conn repository.DB) (*mux.Router, error) {
	// Repositories
	topicRepo := repository.NewTopicRepo(conn)
	articleRepo := repository.NewArticleRepo(conn)
	commentRepo := repository.NewCommentRepo(conn)
	userRepo := repository.NewUserRepo(conn)

	// Services
	topicSvc := services.NewTopicService(topicRepo)
	articleSvc := services.NewArticleService(articleRepo, topicRepo)
	commentSvc := services.NewCommentService(commentRepo, articleRepo, userRepo)
	userSvc := services.NewUserService(userRepo)

	// Handlers
	apiH, err := handlers.NewAPIHandler()
	if err != nil {
		return nil, err
	}
	topicH := handlers.NewTopicHandler(topicSvc)
	articleH := handlers.NewArticleHandler(articleSvc)
	commentH := handlers.NewCommentHandler(commentSvc)
	userH := handlers.NewUserHandler(userSvc)

	router := mux.NewRouter()
	routes.InitRoutes(router, apiH, topicH, articleH, commentH, userH)

	return router, nil
}

// Handler wraps the router with the request-scoped middleware.
func (a *App) Handler() http.Handler {
	return Wrap(a.Router)
}

// Wrap applies request id, access logging and panic recovery around h.
func Wrap(h http.Handler) http.Handler {
	return middleware.RequestID(middleware.Logging(middleware.Recoverer(h)))
}

func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}
