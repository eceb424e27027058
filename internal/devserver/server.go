// Package devserver serves the compiled sign-in client together with a
// fixture login endpoint, so the form can be exercised without the real
// backend. It checks credentials only; it issues no token or session.
package devserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"signin-front/internal/authapi"
)

const requestIDHeader = "X-Request-ID"

type ctxKey struct{}

// Server routes the development endpoints.
type Server struct {
	accounts  Accounts
	staticDir string
	log       *logrus.Entry
	router    *mux.Router
}

type Option func(*Server)

func WithLogger(l *logrus.Entry) Option {
	return func(s *Server) { s.log = l }
}

// New builds the router. staticDir may be empty to disable file serving.
func New(accounts Accounts, staticDir string, opts ...Option) *Server {
	s := &Server{
		accounts:  accounts,
		staticDir: staticDir,
		log:       logrus.WithField("component", "devserver"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.withRequestID, s.accessLog)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("OK\n"))
	}).Methods(http.MethodGet)
	r.HandleFunc(authapi.DefaultLoginPath, s.handleLogin).Methods(http.MethodPost)

	if s.staticDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(s.staticDir))).Methods(http.MethodGet, http.MethodHead)
	}
	return r
}

func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", addr).Info("development server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req authapi.LoginRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Malformed request body"})
		return
	}

	log := s.requestLog(r).WithField("email", req.Email)
	if !s.accounts.Check(req.Email, req.Password) {
		log.Info("login rejected")
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
		return
	}
	log.Info("login accepted")
	writeJSON(w, http.StatusOK, struct{}{})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
