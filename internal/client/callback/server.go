// Package callback serves the loopback page the backend redirects the
// browser to once Google Drive authorization completes.
//
// The backend appends auth_success=true to the frontend URL; seeing that
// parameter flips the AuthGate and posts the "authorized" notice to the
// StatusStore, then the browser is redirected to the same path without the
// query. Any other request gets a plain-text connection status.
package callback

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/client/services"
	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/logging"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	addr   string
	gate   *services.AuthGate
	store  *services.StatusStore
	log    logging.Logger
	engine *gin.Engine
}

func New(addr string, gate *services.AuthGate, store *services.StatusStore, log logging.Logger) *Server {
	if log == nil {
		log = logging.Discard()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	s := &Server{addr: addr, gate: gate, store: store, log: log, engine: engine}

	engine.Use(gin.Recovery(), s.requestLog())
	engine.GET("/", s.handleRoot)

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("callback listen %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	s.log.Info(ctx, "callback server listening", "addr", ln.Addr().String())

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("callback shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("callback serve: %w", err)
	}
}

func (s *Server) handleRoot(c *gin.Context) {
	ok, next := services.ParseCallback(c.Request.URL)
	if ok {
		s.gate.Authorize()
		s.store.SetMessage(services.MsgAuthorized)
		s.log.Info(c.Request.Context(), "authorized via backend redirect")
		c.Redirect(http.StatusFound, next.String())
		return
	}

	status := "Not connected to Google Drive."
	if s.gate.IsAuthorized() {
		status = "Connected to Google Drive!"
	}
	c.String(http.StatusOK, "%s\n%s\n", status, s.store.State().Message)
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug(c.Request.Context(), "callback request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
