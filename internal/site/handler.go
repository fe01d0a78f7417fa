// Package site serves the portfolio pages and the contact API.
package site

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"portfolio3d/internal/contact"
)

// maxContactBody bounds a contact request body.
const maxContactBody = 64 << 10

// Submitter accepts contact messages; *contact.Service implements it.
type Submitter interface {
	Submit(ctx context.Context, client string, msg contact.Message) (contact.Receipt, error)
}

// Deps is what the handler needs.
type Deps struct {
	Profile  Profile
	Contact  Submitter
	Logger   *zap.Logger
	Registry *prometheus.Registry
}

type server struct {
	pages   *pages
	contact Submitter
	log     *zap.Logger
	metrics *Metrics
}

// NewHandler builds the site router.
func NewHandler(d Deps) (http.Handler, error) {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Registry == nil {
		d.Registry = prometheus.NewRegistry()
	}
	p, err := loadPages(d.Profile)
	if err != nil {
		return nil, err
	}
	s := &server{
		pages:   p,
		contact: d.Contact,
		log:     d.Logger,
		metrics: NewMetrics(d.Registry),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/", s.page("home"))
	for _, name := range pageNames[1:] {
		r.Get("/"+name, s.page(name))
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(staticFS())))

	r.Post("/api/contact", s.handleContact)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	r.Handle("/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))

	return r, nil
}

// logRequests logs each request and records its latency under the
// matched route pattern.
func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		elapsed := time.Since(start)
		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.metrics.Requests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Observe(elapsed.Seconds())
		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Duration("elapsed", elapsed),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}

func (s *server) page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.pages.render(w, name); err != nil {
			s.log.Error("render page", zap.String("page", name), zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}

type contactResponse struct {
	OK     bool              `json:"ok"`
	ID     string            `json:"id,omitempty"`
	Error  string            `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

func (s *server) handleContact(w http.ResponseWriter, r *http.Request) {
	if s.contact == nil {
		s.metrics.Contact.WithLabelValues("disabled").Inc()
		writeJSON(w, http.StatusServiceUnavailable, contactResponse{Error: "contact form is not configured"})
		return
	}

	msg, err := decodeContact(r)
	if err != nil {
		s.metrics.Contact.WithLabelValues("bad_request").Inc()
		writeJSON(w, http.StatusBadRequest, contactResponse{Error: "could not read the form"})
		return
	}

	receipt, err := s.contact.Submit(r.Context(), clientKey(r), msg)
	var verr *contact.ValidationError
	switch {
	case err == nil:
		s.metrics.Contact.WithLabelValues("sent").Inc()
		writeJSON(w, http.StatusOK, contactResponse{OK: true, ID: receipt.ID})
	case errors.As(err, &verr):
		s.metrics.Contact.WithLabelValues("invalid").Inc()
		writeJSON(w, http.StatusUnprocessableEntity, contactResponse{Error: "please check the form", Fields: verr.Fields})
	case errors.Is(err, contact.ErrThrottled):
		s.metrics.Contact.WithLabelValues("throttled").Inc()
		w.Header().Set("Retry-After", "60")
		writeJSON(w, http.StatusTooManyRequests, contactResponse{Error: "too many messages, try again later"})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		s.metrics.Contact.WithLabelValues("canceled").Inc()
		s.log.Info("contact request canceled", zap.Error(err))
	default:
		s.metrics.Contact.WithLabelValues("relay_error").Inc()
		writeJSON(w, http.StatusBadGateway, contactResponse{Error: "There was an error sending your message. Please try again."})
	}
}

// decodeContact reads a JSON body or a url-encoded/multipart form.
func decodeContact(r *http.Request) (contact.Message, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxContactBody)

	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		var msg contact.Message
		err := json.NewDecoder(r.Body).Decode(&msg)
		return msg, err
	}

	if ct == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxContactBody); err != nil {
			return contact.Message{}, err
		}
	} else if err := r.ParseForm(); err != nil {
		return contact.Message{}, err
	}
	return contact.Message{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Subject: r.PostFormValue("subject"),
		Message: r.PostFormValue("message"),
	}, nil
}

// clientKey identifies the sender for throttling. RealIP has already
// replaced RemoteAddr with the forwarded address when there is one.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
