package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/akgarhwal/vault/internal/adapter"
	"github.com/akgarhwal/vault/internal/logger"
	"github.com/akgarhwal/vault/internal/service"
)

func (h *Handler) headMirror(w http.ResponseWriter, r *http.Request) {
	info, err := h.mirrors.Stat(chi.URLParam(r, "name"))
	if err != nil {
		h.mirrorError(w, r, err)
		return
	}

	setMirrorHeaders(w, info)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) getMirror(w http.ResponseWriter, r *http.Request) {
	data, info, err := h.mirrors.Read(chi.URLParam(r, "name"))
	if err != nil {
		h.mirrorError(w, r, err)
		return
	}

	setMirrorHeaders(w, info)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handler) putMirror(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := chi.URLParam(r, "name")

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "export is too large", http.StatusRequestEntityTooLarge)
			return
		}
		log.Err(err).Str("name", name).Msg("error reading upload")
		http.Error(w, "error reading body", http.StatusBadRequest)
		return
	}

	doc, err := h.parse(data)
	if err != nil {
		log.Warn().Err(err).Str("name", name).Msg("rejected upload")
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	existed, err := h.mirrors.Write(r.Context(), name, data)
	if err != nil {
		h.mirrorError(w, r, err)
		return
	}

	log.Info().Str("name", name).Int("items", len(doc.Items)).Msg("mirror stored")
	if existed {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func setMirrorHeaders(w http.ResponseWriter, info adapter.MirrorInfo) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	w.Header().Set("Last-Modified", info.ModTime.UTC().Format(http.TimeFormat))
}

func (h *Handler) mirrorError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, adapter.ErrInvalidMirrorName):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, adapter.ErrMirrorNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		logger.FromRequest(r).Err(err).Msg("mirror storage error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

var _ DocumentParser = service.ParseExportDocument
