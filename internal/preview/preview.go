package preview

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"net/http"
	"time"

	"github.com/disintegration/imaging"

	"github.com/fkcurrie/st7920-display-golang/internal/display"
	"github.com/fkcurrie/st7920-display-golang/internal/types"
)

// shutdownTimeout bounds the graceful shutdown of the server
const shutdownTimeout = 5 * time.Second

// Framer provides the last complete frame
type Framer interface {
	Snapshot() image.Image
}

// Server serves the current display frame over HTTP
type Server struct {
	framer Framer
	scale  int
	server *http.Server
}

// NewServer creates a preview server for framer
func NewServer(cfg types.PreviewConfig, framer Framer) *Server {
	s := &Server{
		framer: framer,
		scale:  cfg.Scale,
	}
	s.server = &http.Server{
		Addr:    cfg.Addr,
		Handler: s.Handler(),
	}
	return s
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.HandleFunc("/frame.png", s.handleFrame)
	return mux
}

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if err := imaging.Encode(w, display.Scale(s.framer.Snapshot(), s.scale), imaging.PNG); err != nil {
		log.Printf("Failed to encode frame: %v", err)
	}
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Preview listening on %s", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start preview server: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown preview server: %w", err)
	}
	return nil
}
