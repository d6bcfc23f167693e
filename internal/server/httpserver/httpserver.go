package httpserver

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	rate "github.com/wallstreetcn/rate/redis"

	"github.com/tombowditch/passgen-serv/internal/config"
	"github.com/tombowditch/passgen-serv/internal/secret"
	"github.com/tombowditch/passgen-serv/internal/store"
	"github.com/tombowditch/passgen-serv/passgen"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store store.Store
}

// NewHandler creates an HTTP handler with all routes configured.
func NewHandler(s store.Store) http.Handler {
	srv := &Server{store: s}

	r := httprouter.New()
	r.GET("/", srv.indexPage)
	r.GET("/password", srv.generatePassword)
	r.GET("/int", srv.generateInt)
	r.GET("/s/:identifier", srv.redeemShare)

	return r
}

func (s *Server) indexPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(`pw.ig.lc - password generator

every symbol is drawn with crypto-grade randomness, no modulo bias

GET /password                        24 chars of printable ascii
GET /password?len=32&charset=alnum   pick length and charset
GET /password?share=true             one-time link instead of the secret
GET /int?min=0&max=255               uniform integer in [min, max]
GET /s/<id>                          redeem a one-time link (works once)

charsets: ascii (default), alnum, hex

or pipe to 'nc pw.ig.lc 9998':

~> echo "32 hex" | nc pw.ig.lc 9998
D41F9C0A7E2B5D8C3F6A1E9B0C4D7F2A`))
}

func (s *Server) generatePassword(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	// Rate limit: 2 requests per second per IP
	cip := getClientIP(r)
	limiter := rate.NewLimiter(rate.Every(time.Second), 2, "passgen_http_rl_"+cip)
	if !limiter.Allow() {
		writeText(w, http.StatusTooManyRequests, "rate limit exceeded (2 requests per second)")
		return
	}

	req, err := secret.Parse(r.URL.Query().Get("len"), r.URL.Query().Get("charset"))
	if err != nil {
		writeValidationError(w, err)
		return
	}

	pw, err := passgen.Generate(req.Alphabet, req.Length)
	if err != nil {
		slog.Error("password generation failed", "error", err, "length", req.Length)
		writeText(w, http.StatusInternalServerError, "error")
		return
	}

	if r.URL.Query().Get("share") != "true" {
		writeText(w, http.StatusOK, pw)
		return
	}

	// Store the secret under a fresh random ID and hand out a one-time
	// link instead of the secret itself.
	for tried := 0; tried < 10; tried++ {
		id, err := passgen.Generate(passgen.Alphanumeric, config.ShareIDLength)
		if err != nil {
			slog.Error("share id generation failed", "error", err)
			writeText(w, http.StatusInternalServerError, "error")
			return
		}

		ok, err := s.store.Put(id, pw)
		if err != nil {
			slog.Error("store put failed", "error", err)
			writeText(w, http.StatusInternalServerError, "error, could not reach db")
			return
		}
		if ok {
			slog.Info("created one-time share", "remote", cip)
			writeText(w, http.StatusCreated, config.BaseURL+"s/"+id)
			return
		}
		// Collision on a 32-char random ID, try again
	}

	slog.Error("could not allocate share id after retries")
	writeText(w, http.StatusInternalServerError, "could not allocate share id")
}

func (s *Server) generateInt(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	// Rate limit: 2 requests per second per IP
	cip := getClientIP(r)
	limiter := rate.NewLimiter(rate.Every(time.Second), 2, "passgen_http_int_rl_"+cip)
	if !limiter.Allow() {
		writeText(w, http.StatusTooManyRequests, "rate limit exceeded (2 requests per second)")
		return
	}

	min, err := strconv.ParseInt(r.URL.Query().Get("min"), 10, 64)
	if err != nil {
		writeText(w, http.StatusBadRequest, "min must be an integer")
		return
	}
	max, err := strconv.ParseInt(r.URL.Query().Get("max"), 10, 64)
	if err != nil {
		writeText(w, http.StatusBadRequest, "max must be an integer")
		return
	}

	n, err := passgen.Int(min, max)
	if err != nil {
		if passgen.IsInvalidArgument(err) {
			writeText(w, http.StatusBadRequest, strings.TrimPrefix(err.Error(), "passgen: "))
			return
		}
		slog.Error("integer generation failed", "error", err, "min", min, "max", max)
		writeText(w, http.StatusInternalServerError, "error")
		return
	}

	writeText(w, http.StatusOK, strconv.FormatInt(n, 10))
}

func (s *Server) redeemShare(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	// Rate limit: 1 request per second per IP
	cip := getClientIP(r)
	limiter := rate.NewLimiter(rate.Every(time.Second), 1, "passgen_http_share_rl_"+cip)
	if !limiter.Allow() {
		writeText(w, http.StatusTooManyRequests, "rate limit exceeded (1 request per second)")
		return
	}

	identifier := ps.ByName("identifier")

	val, err := s.store.Take(identifier)
	if err != nil {
		if err != store.ErrNotFound {
			slog.Error("store take failed", "error", err, "identifier", identifier)
		}
		writeText(w, http.StatusNotFound, "not found, expired or already redeemed")
		return
	}

	slog.Info("redeemed one-time share", "remote", cip)
	writeText(w, http.StatusOK, val)
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	w.Write([]byte(body + "\n"))
}

func writeValidationError(w http.ResponseWriter, err error) {
	if ve, ok := err.(*secret.ValidationError); ok {
		writeText(w, ve.StatusCode, ve.Message)
		return
	}
	writeText(w, http.StatusBadRequest, err.Error())
}

// getClientIP extracts the real client IP. Forwarding headers are only
// honored behind a trusted proxy, since they can be spoofed to bypass
// rate limiting.
func getClientIP(r *http.Request) string {
	if config.TrustProxy() {
		// X-Forwarded-For can be a comma-separated list: client, proxy1, proxy2
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			if idx := strings.Index(xff, ","); idx != -1 {
				return strings.TrimSpace(xff[:idx])
			}
			return strings.TrimSpace(xff)
		}

		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return strings.TrimSpace(xri)
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
