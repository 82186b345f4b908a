package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"civicflow/backend/service"

	"github.com/apex/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	EndPointRoot         = "/"
	EndPointHealth       = "/health"
	EndPointVersion      = "/version"
	EndPointMetrics      = "/metrics"
	EndPointSubmitReport = "/submit_report"
	EndPointFindServices = "/find_services"
	EndPointAdminStats   = "/admin_stats"
)

const (
	serviceName     = "civicflow"
	shutdownTimeout = 30 * time.Second
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	intake    *service.IntakeService
	query     *service.QueryService
	directory *service.DirectoryService
	db        Pinger
}

func New(intake *service.IntakeService, query *service.QueryService, directory *service.DirectoryService, db Pinger) *Server {
	return &Server{
		intake:    intake,
		query:     query,
		directory: directory,
		db:        db,
	}
}

// Router builds the gin engine with every civicflow endpoint registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"*"},
		AllowAllOrigins: true,
		MaxAge:          12 * time.Hour,
	}))

	router.GET(EndPointRoot, s.Root)
	router.GET(EndPointHealth, s.Health)
	router.GET(EndPointVersion, Version)
	router.GET(EndPointMetrics, gin.WrapH(promhttp.Handler()))

	router.POST(EndPointSubmitReport, s.SubmitReport)
	router.POST(EndPointFindServices, s.FindServices)
	router.GET(EndPointAdminStats, s.AdminStats)

	return router
}

// Run listens on port and serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, port int) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", port, err)
	}
	log.Infof("Civicflow backend starting on port %d", port)
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done. In-flight requests get shutdownTimeout to finish.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s.Router()}

	errc := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Info("Server exited")
	return nil
}
