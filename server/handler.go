package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kipdayo/kipdayo/bilibili"
	"github.com/kipdayo/kipdayo/log"
)

// SessdataHeader carries the caller's token.
const SessdataHeader = "X-Sessdata"

// Resolver is the part of *bilibili.Client the handler needs.
type Resolver interface {
	ResolvePlayURL(ctx context.Context, pageURL, sessdata string) (*bilibili.PlayURL, error)
}

type handler struct {
	resolver Resolver
	metrics  *Metrics
	// sessdata is used when a request carries no token header.
	sessdata string
}

type errorBody struct {
	Error string `json:"error"`
}

func (h *handler) resolve(w http.ResponseWriter, r *http.Request) {
	pageURL := r.URL.Query().Get("url")
	if pageURL == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "missing url query parameter"})
		return
	}

	sessdata := r.Header.Get(SessdataHeader)
	if sessdata == "" {
		sessdata = h.sessdata
	}

	play, err := h.resolver.ResolvePlayURL(r.Context(), pageURL, sessdata)
	if err != nil {
		h.metrics.failures.WithLabelValues(bilibili.KindOf(err).String()).Inc()
		log.Warnf("resolve failed: %s", err)
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: err.Error()})
		return
	}

	h.metrics.resolutions.WithLabelValues(string(play.Format)).Inc()

	body, err := play.JSON()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}
