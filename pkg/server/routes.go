package server

import (
	"fmt"
	"net/http"
	"time"

	httpLogger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/riandyrn/otelchi"

	"github.com/getidex/idex/pkg/models"
)

const (
	ReadHeaderTimeout    = 5 * time.Second
	ServerContextTimeout = 5 * time.Minute
	RouterName           = "idex-api"
)

// Create creates a new HTTP server with the given app state
func Create(appState *models.AppState) *http.Server {
	return &http.Server{
		Addr: fmt.Sprintf(
			"%s:%d",
			appState.Config.Server.Host,
			appState.Config.Server.Port,
		),
		Handler:           setupRouter(appState),
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
}

// @title			Idex REST API
// @version		0.x
// @license.name	Apache 2.0
// @license.url	http://www.apache.org/licenses/LICENSE-2.0.html
// @BasePath		/api/v1
// @schemes		http https
func setupRouter(appState *models.AppState) *chi.Mux {
	maxRequestSize := appState.Config.Server.MaxUploadMB << 20

	router := chi.NewRouter()
	router.Use(httpLogger.Logger("router", log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.CleanPath)
	router.Use(middleware.RequestSize(maxRequestSize))
	router.Use(middleware.Timeout(ServerContextTimeout))
	router.Use(cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, _ string) bool { return true },
		AllowedMethods:  []string{"GET", "POST"},
		AllowedHeaders:  []string{"*"},
	}))
	router.Use(SendVersion)
	router.Use(middleware.Heartbeat("/healthz"))
	router.Use(otelchi.Middleware(RouterName, otelchi.WithChiRoutes(router)))

	router.Get("/", GetHealthHandler(appState))

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/process", ProcessDocumentHandler(appState))
		r.Post("/transcribe", TranscribeAudioHandler(appState))
	})

	return router
}
