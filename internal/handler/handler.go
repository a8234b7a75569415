package handler

import (
	"github.com/forum-dev/forum-api/internal/service"
)

type Handler struct {
	auth     service.AuthService
	threads  service.ThreadService
	comments service.CommentService
	replies  service.ReplyService
	likes    service.LikeService
}

func New(auth service.AuthService, threads service.ThreadService, comments service.CommentService, replies service.ReplyService, likes service.LikeService) *Handler {
	return &Handler{auth, threads, comments, replies, likes}
}
