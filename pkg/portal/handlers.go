package portal

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wifi-custodian/custodian-go/pkg/connection"
	"github.com/wifi-custodian/custodian-go/pkg/credential"
	"github.com/wifi-custodian/custodian-go/pkg/log"
)

// Form field names. The aliases are what earlier firmware submitted.
var (
	nameFields   = []string{"name", "ssid"}
	secretFields = []string{"secret", "password"}
)

// StatusResponse is the body of GET /status.
type StatusResponse struct {
	State    string `json:"state"`
	Stored   int    `json:"stored"`
	Attempt  string `json:"attempt"`
	TimeoutS int    `json:"timeout_s"`
}

// handleRoot serves the credential form.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if !allowMethods(w, r, http.MethodGet, http.MethodHead) {
		return
	}

	s.render(w, http.StatusOK, "form", pageData{
		Stored:   s.mgr.Store().Count(),
		Capacity: credential.MaxSlots,
	})
}

// handleUpdate starts a manual join or reports on the one in flight.
func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet, http.MethodPost) {
		return
	}

	switch s.mgr.ManualAttempt() {
	case connection.AttemptSucceeded:
		http.Redirect(w, r, "/connect", http.StatusFound)
		return
	case connection.AttemptPending:
		s.renderWait(w)
		return
	case connection.AttemptFailed:
		s.mgr.ResetManualAttempt()
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		s.render(w, http.StatusBadRequest, "error", pageData{Message: "Malformed request."})
		return
	}
	name, hasName := formValue(r, nameFields)
	secret, hasSecret := formValue(r, secretFields)
	if !hasName || !hasSecret {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	c := credential.Credential{Name: name, Secret: secret}
	if err := c.Validate(); err != nil {
		s.render(w, http.StatusBadRequest, "error", pageData{Message: validationMessage(err)})
		return
	}

	err := s.mgr.BeginManualAttempt(c)
	switch {
	case err == nil, errors.Is(err, connection.ErrAttemptInProgress):
		s.renderWait(w)
	case errors.Is(err, connection.ErrManualJoined):
		http.Redirect(w, r, "/connect", http.StatusFound)
	default:
		s.warn("manual join not started", "error", err)
		s.render(w, http.StatusInternalServerError, "error", pageData{Message: "Could not start the connection attempt."})
	}
}

// handleConnect confirms a successful manual join.
func (s *Server) handleConnect(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}

	if err := s.mgr.CompleteProvisioning(); err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	s.render(w, http.StatusOK, "connected", pageData{StoreFull: s.mgr.StoreFull()})
}

// handleDelete wipes the credential store.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}

	if err := s.mgr.Store().WipeAll(); err != nil {
		s.warn("wipe credentials", "error", err)
		s.render(w, http.StatusInternalServerError, "error", pageData{Message: "Stored networks could not be deleted."})
		return
	}
	s.render(w, http.StatusOK, "deleted", pageData{})
}

// handleStatus returns the manager state as JSON.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{
		State:    s.mgr.State().String(),
		Stored:   s.mgr.Store().Count(),
		Attempt:  s.mgr.ManualAttempt().String(),
		TimeoutS: int(s.mgr.Timeout().Seconds()),
	})
}

func (s *Server) renderWait(w http.ResponseWriter) {
	s.render(w, http.StatusOK, "wait", pageData{Refresh: int(s.config.RefreshInterval.Seconds())})
}

// logRequests emits a request event per request. The query string is
// never recorded because it carries the secret.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		e := log.NewEvent(log.ComponentPortal, log.CategoryRequest)
		e.AttemptID = log.NewAttemptID()
		e.Request = &log.RequestEvent{
			Method:     r.Method,
			Path:       r.URL.Path,
			Status:     rec.status,
			RemoteAddr: r.RemoteAddr,
		}
		s.events.Log(e)

		if s.logger != nil {
			s.logger.Debug("portal request", "method", r.Method, "path", r.URL.Path, "status", rec.status)
		}
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// allowMethods replies 405 unless r uses one of methods.
func allowMethods(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}
	for _, m := range methods {
		w.Header().Add("Allow", m)
	}
	http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	return false
}

// formValue returns the first present field among names.
func formValue(r *http.Request, names []string) (string, bool) {
	for _, n := range names {
		if vs, ok := r.Form[n]; ok && len(vs) > 0 {
			return vs[0], true
		}
	}
	return "", false
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, credential.ErrEmptyName):
		return "Network name must not be empty."
	case errors.Is(err, credential.ErrFieldTooLong):
		return "Network name and password must be at most 31 bytes."
	case errors.Is(err, credential.ErrFieldHasNUL):
		return "Network name and password must not contain NUL characters."
	default:
		return "Invalid network credentials."
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
