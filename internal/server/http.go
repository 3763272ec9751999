package server

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kubev2v/clause-builder/internal/config"
	"github.com/kubev2v/clause-builder/internal/server/middlewares"
	"github.com/kubev2v/clause-builder/pkg/certificates"
)

const (
	ProductionServer string = "prod"
	DevServer        string = "dev"
	apiV1            string = "/api/v1"
	metricsPath      string = "/metrics"
	healthPath       string = "/health"

	certValidity      = 365 * 24 * time.Hour
	readHeaderTimeout = 10 * time.Second
)

var certHosts = []string{"localhost", "127.0.0.1", "::1"}

type Server struct {
	srv *http.Server
}

// NewServer builds the clause builder server. In production mode it serves
// the web UI from the statics folder, when one is configured, and listens
// with a self-signed certificate.
func NewServer(cfg *config.Configuration, registerHandlerFn func(router *gin.RouterGroup)) (*Server, error) {
	prod := cfg.Server.ServerMode == ProductionServer

	gin.SetMode(gin.DebugMode)
	if prod {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	// uploads above this size are spooled to temporary files
	engine.MaxMultipartMemory = cfg.Server.MaxUploadSize

	engine.GET(metricsPath, gin.WrapH(promhttp.Handler()))
	engine.GET(healthPath, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", cfg.Server.HTTPPort),
		Handler:           engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	if prod {
		if cfg.Server.StaticsFolder != "" {
			serveUI(engine, cfg.Server.StaticsFolder)
		}

		tlsConfig, err := selfSignedTLS()
		if err != nil {
			return nil, err
		}
		srv.TLSConfig = tlsConfig
	}

	router := engine.Group(apiV1)
	router.Use(
		middlewares.Logger(),
		ginzap.RecoveryWithZap(zap.S().Desugar(), true),
	)
	registerHandlerFn(router)

	return &Server{srv: srv}, nil
}

// Start starts the HTTP or HTTPS server based on TLS configuration.
func (r *Server) Start(ctx context.Context) error {
	if r.srv.TLSConfig != nil {
		return r.srv.ListenAndServeTLS("", "")
	}
	return r.srv.ListenAndServe()
}

// Stop gracefully shuts the server down, waiting for in-flight requests until ctx expires.
func (r *Server) Stop(ctx context.Context) {
	if err := r.srv.Shutdown(ctx); err != nil {
		zap.S().Errorw("server shutdown", "error", err)
	}
}

// serveUI serves the single page clause builder UI. Unknown paths outside the
// API fall back to index.html.
func serveUI(engine *gin.Engine, folder string) {
	index := filepath.Join(folder, "index.html")

	engine.Static("/assets", filepath.Join(folder, "assets"))
	engine.StaticFile("/", index)

	engine.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
			return
		}
		c.File(index)
	})
}

func selfSignedTLS() (*tls.Config, error) {
	cert, key, err := certificates.GenerateSelfSignedCertificate(certHosts, time.Now().Add(certValidity))
	if err != nil {
		return nil, fmt.Errorf("failed to generate server's certificates: %w", err)
	}

	return &tls.Config{
		Certificates: []tls.Certificate{{
			Certificate: [][]byte{cert.Raw},
			PrivateKey:  key,
			Leaf:        cert,
		}},
		MinVersion: tls.VersionTLS12,
	}, nil
}
