package api

import (
	"net/http"
)

const dataJSUpdatedMessage = "data.js обновлён успешно"

type generateErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func (s *Server) generateDataJSHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.GenerateDataJS(r.Context()); err != nil {
		s.log.Errorw("failed to generate data.js", "error", err)
		writeJSON(w, http.StatusInternalServerError, generateErrorResponse{
			Error:   "Failed to generate data.js",
			Details: err.Error(),
		})
		return
	}

	s.log.Infow("data.js regenerated")
	writeJSON(w, http.StatusOK, okResponse{OK: true, Message: dataJSUpdatedMessage})
}
