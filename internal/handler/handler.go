package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/iurnickita/binday/internal/handler/config"
	"github.com/iurnickita/binday/internal/logger"
	"github.com/iurnickita/binday/internal/service"
	"github.com/iurnickita/binday/internal/skill"
	"github.com/iurnickita/binday/internal/speech"
)

func Serve(cfg config.Config, service service.Service, zaplog *zap.Logger) error {
	h := newHandler(service, zaplog)
	router := h.newRouter()

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: router,
	}

	zaplog.Info("starting server", zap.String("addr", cfg.ServerAddr))
	return srv.ListenAndServe()
}

type handler struct {
	service service.Service
	zaplog  *zap.Logger
}

func newHandler(service service.Service, zaplog *zap.Logger) *handler {
	return &handler{
		service: service,
		zaplog:  zaplog,
	}
}

func (h *handler) newRouter() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/skill", logger.RequestLogMdlw(h.PostSkill, h.zaplog))
	mux.HandleFunc("GET /api/collections", logger.RequestLogMdlw(h.GetCollections, h.zaplog))
	mux.HandleFunc("GET /ping", h.Ping)

	return mux
}

func (h *handler) PostSkill(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	_, err := buf.ReadFrom(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var request skill.Request
	err = json.Unmarshal(buf.Bytes(), &request)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	text := h.service.Fulfill(r.Context(), request.Request.Intent, request.Address)

	responseJSON, err := json.Marshal(skill.NewResponse(text))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(responseJSON)
}

type CollectionJSON struct {
	Key      string     `json:"key"`
	Type     string     `json:"roundType,omitempty"`
	AskedFor string     `json:"askedFor"`
	Date     *time.Time `json:"date"`
}

type GetCollectionsJSONResponse struct {
	Collections []CollectionJSON `json:"collections"`
	Text        string           `json:"text"`
}

func (h *handler) GetCollections(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	addr := skill.HouseAddress{
		HouseNumber: query.Get("house"),
		Street:      query.Get("street"),
		Postcode:    query.Get("postcode"),
	}
	if addr.HouseNumber == "" || addr.Street == "" || addr.Postcode == "" {
		http.Error(w, "house, street and postcode are required", http.StatusBadRequest)
		return
	}

	result, err := h.service.NextCollections(r.Context(), addr, query["type"])
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAddressNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, service.ErrAddressLookupFailed),
			errors.Is(err, service.ErrScheduleFetchFailed),
			errors.Is(err, service.ErrMissingScheduleData):
			http.Error(w, err.Error(), http.StatusBadGateway)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	response := GetCollectionsJSONResponse{
		Collections: make([]CollectionJSON, 0, len(result.Entries)),
		Text:        speech.Compose(result, h.service.Today()),
	}
	for _, entry := range result.Entries {
		response.Collections = append(response.Collections, CollectionJSON{
			Key:      entry.Key,
			Type:     string(entry.RoundType),
			AskedFor: entry.AskedFor,
			Date:     entry.Date,
		})
	}
	responseJSON, err := json.Marshal(response)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(responseJSON)
}

func (h *handler) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
