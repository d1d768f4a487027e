package routes

import (
	"net/http"

	"newsapi/internal/handlers"
	"newsapi/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

func InitRoutes(
	router *mux.Router,
	apiH *handlers.APIHandler,
	topicH *handlers.TopicHandler,
	articleH *handlers.ArticleHandler,
	commentH *handlers.CommentHandler,
	userH *handlers.UserHandler,
) {
	router.Use(middleware.Route)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("", apiH.Describe).Methods(http.MethodGet)

	api.HandleFunc("/topics", topicH.GetAll).Methods(http.MethodGet)

	api.HandleFunc("/articles", articleH.List).Methods(http.MethodGet)
	api.HandleFunc("/articles/{article_id}", articleH.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/articles/{article_id}", articleH.UpdateVotes).Methods(http.MethodPatch)
	api.HandleFunc("/articles/{article_id}/comments", commentH.ListByArticle).Methods(http.MethodGet)
	api.HandleFunc("/articles/{article_id}/comments", commentH.Create).Methods(http.MethodPost)

	api.HandleFunc("/comments/{comment_id}", commentH.UpdateVotes).Methods(http.MethodPatch)
	api.HandleFunc("/comments/{comment_id}", commentH.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/users", userH.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/users/{username}", userH.GetByUsername).Methods(http.MethodGet)

	// Anything else, including a known path with the wrong method, is a 404.
	router.NotFoundHandler = http.HandlerFunc(middleware.NotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(middleware.NotFound)
}
