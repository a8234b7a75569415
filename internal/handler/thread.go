package handler

import (
	"net/http"

	mw "github.com/forum-dev/forum-api/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	owner := mw.UserIdFromContext(r.Context())

	payload, err := decodePayload(r.Body)
	if err != nil {
		writeError(w, err)
		return
	}

	added, err := h.threads.Create(payload, owner)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"addedThread": added})
}

func (h *Handler) GetThreadDetail(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")

	detail, err := h.threads.GetDetail(threadId)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"thread": detail})
}
