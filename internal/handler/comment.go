package handler

import (
	"net/http"

	mw "github.com/forum-dev/forum-api/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")
	owner := mw.UserIdFromContext(r.Context())

	payload, err := decodePayload(r.Body)
	if err != nil {
		writeError(w, err)
		return
	}

	added, err := h.comments.Create(threadId, payload, owner)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"addedComment": added})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")
	requester := mw.UserIdFromContext(r.Context())

	if err := h.comments.Delete(threadId, commentId, requester); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}
