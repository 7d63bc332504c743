package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/parameshwari/pg-manager/helpdesk/html"
	"github.com/parameshwari/pg-manager/helpdesk/internal"
	"github.com/parameshwari/pg-manager/helpdesk/static"
	"github.com/pkg/errors"
	. "maragu.dev/gomponents"
	ghttp "maragu.dev/gomponents/http"
)

const (
	// HTMXRequestHeader marks requests issued by HTMX, which expect a fragment
	// instead of a full document.
	HTMXRequestHeader = "HX-Request"
	// HTMXHistoryRestoreHeader is set when HTMX refetches a page after a
	// history cache miss. Those requests need the full document.
	HTMXHistoryRestoreHeader = "HX-History-Restore-Request"
)

type Server struct {
	config  *internal.ServerConfig
	source  internal.ContentSource
	handler http.Handler
	server  *http.Server
}

func NewServer(serverConfig *internal.ServerConfig, source internal.ContentSource) *Server {
	s := &Server{
		config:  serverConfig,
		source:  source,
		server:  &http.Server{Addr: fmt.Sprintf(":%s", serverConfig.Port)},
	}
	mux := http.NewServeMux()
	s.setupRoutes(mux)
	s.handler = requestLoggingMiddleware(mux)
	return s
}

func (s *Server) setupRoutes(mux *http.ServeMux) {
	Static(mux)
	Root(mux)
	Health(mux)
	Help(mux, s.source, s.config)
	FAQFragment(mux, s.source)
	HelpText(mux, s.source)
}

// Handler returns the routed handler wrapped in request logging.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start serves until ctx is cancelled, then shuts down gracefully within the
// configured timeout.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.handler
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down server", "timeout", s.config.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// requestLoggingMiddleware logs all incoming HTTP requests and hands each
// request a logger carrying its method and path.
func requestLoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		ctx := internal.ContextWithLogger(r.Context(), slog.Default().Handler(), "method", r.Method, "path", r.URL.Path)

		next.ServeHTTP(wrapped, r.WithContext(ctx))

		duration := time.Since(start)

		// Skip logging for static assets at debug level
		if strings.HasPrefix(r.URL.Path, internal.PathStatic) {
			slog.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", wrapped.statusCode,
				"duration", duration,
			)
		} else {
			slog.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", wrapped.statusCode,
				"duration", duration,
				"remoteAddr", r.RemoteAddr,
			)
		}
	})
}

func isHTMXRequest(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get(HTMXRequestHeader), "true")
}

func isHistoryRestore(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get(HTMXHistoryRestoreHeader), "true")
}

// wantsFragment reports whether the response should be the page body only.
func wantsFragment(r *http.Request) bool {
	return isHTMXRequest(r) && !isHistoryRestore(r)
}

func loadContent(r *http.Request, source internal.ContentSource) (internal.Content, error) {
	content, err := source.Get(r.Context())
	if err != nil {
		internal.LoggerFromContext(r.Context()).Error(err, "failed to load help content")
		return internal.Content{}, errors.Wrap(err, "loading help content")
	}
	return content, nil
}

func accordionState(r *http.Request, content internal.Content) internal.Accordion {
	return internal.ParseAccordion(r.URL.Query().Get(internal.FAQQueryKey), content.FAQIDs())
}

func Root(mux *http.ServeMux) {
	mux.Handle("GET /{$}", http.RedirectHandler(internal.PathHelp, http.StatusFound))
}

func Health(mux *http.ServeMux) {
	mux.HandleFunc("GET "+internal.PathHealth, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
}

func Help(mux *http.ServeMux, source internal.ContentSource, config *internal.ServerConfig) {
	mux.Handle("GET "+internal.PathHelp, ghttp.Adapt(func(w http.ResponseWriter, r *http.Request) (Node, error) {
		content, err := loadContent(r, source)
		if err != nil {
			return nil, err
		}
		state := accordionState(r, content)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Add("Vary", HTMXRequestHeader)
		w.Header().Add("Vary", HTMXHistoryRestoreHeader)
		if wantsFragment(r) {
			internal.LoggerFromContext(r.Context()).V(1).Info("rendering help fragment", "open", state.Open)
			return html.HelpMain(content, state), nil
		}
		internal.LoggerFromContext(r.Context()).V(1).Info("rendering help page", "open", state.Open)
		return html.HelpPage(content, state, config), nil
	}))
}

func FAQFragment(mux *http.ServeMux, source internal.ContentSource) {
	mux.Handle("GET "+internal.PathFAQFragment, ghttp.Adapt(func(w http.ResponseWriter, r *http.Request) (Node, error) {
		content, err := loadContent(r, source)
		if err != nil {
			return nil, err
		}
		state := accordionState(r, content)
		internal.LoggerFromContext(r.Context()).V(1).Info("rendering faq accordion", "open", state.Open)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		return html.FAQAccordion(content.FAQs, state), nil
	}))
}

func HelpText(mux *http.ServeMux, source internal.ContentSource) {
	mux.HandleFunc("GET "+internal.PathHelpText, func(w http.ResponseWriter, r *http.Request) {
		content, err := loadContent(r, source)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		body, err := html.HelpText(content)
		if err != nil {
			internal.LoggerFromContext(r.Context()).Error(err, "failed to render help text")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(body))
	})
}

func Static(mux *http.ServeMux) {
	mux.Handle("GET "+internal.PathStatic, http.StripPrefix(internal.PathStatic, http.FileServer(static.FileSystem())))
}
