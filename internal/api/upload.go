package api

import (
	"errors"
	"net/http"
)

const (
	uploadField     = "image"
	multipartMemory = 8 << 20
)

func (s *Server) uploadImageHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.UploadMaxBytes)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.log.Warnw("upload too large", "limit", maxErr.Limit)
			writeJSONError(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		s.badRequestResponse(w, r, "No file uploaded", err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		s.badRequestResponse(w, r, "No file uploaded", err)
		return
	}
	defer file.Close()

	url, err := s.uploader.Upload(r.Context(), header.Filename, file)
	if err != nil {
		s.internalServerError(w, r, "Upload failed", err)
		return
	}

	s.log.Infow("image uploaded", "original", header.Filename, "size", header.Size, "url", url)
	writeJSON(w, http.StatusOK, okResponse{OK: true, URL: url})
}
