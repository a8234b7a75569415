package handler

import (
	"net/http"

	mw "github.com/forum-dev/forum-api/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) ToggleCommentLike(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")
	userId := mw.UserIdFromContext(r.Context())

	if err := h.likes.Toggle(threadId, commentId, userId); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}
