package api

import (
	"net/http"
)

func (s *Server) badRequestResponse(w http.ResponseWriter, r *http.Request, message string, err error) {
	s.log.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err)
	writeJSONError(w, http.StatusBadRequest, message)
}

func (s *Server) internalServerError(w http.ResponseWriter, r *http.Request, message string, err error) {
	s.log.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err)
	writeJSONError(w, http.StatusInternalServerError, message)
}

func (s *Server) notFoundResponse(w http.ResponseWriter, r *http.Request, message string) {
	writeJSONError(w, http.StatusNotFound, message)
}

func (s *Server) unauthorizedBasicErrorResponse(w http.ResponseWriter, r *http.Request) {
	s.log.Warnw("unauthorized admin request", "method", r.Method, "path", r.URL.Path, "ip", r.RemoteAddr)
	w.Header().Set("WWW-Authenticate", `Basic realm="admin", charset="UTF-8"`)
	writeJSONError(w, http.StatusUnauthorized, "unauthorized")
}
