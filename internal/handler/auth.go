package handler

import (
	"net/http"
)

type registerRequest struct {
	Username string `validate:"required" json:"username"`
	Password string `validate:"required" json:"password"`
	Fullname string `validate:"required" json:"fullname"`
}

type loginRequest struct {
	Username string `validate:"required" json:"username"`
	Password string `validate:"required" json:"password"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if err := decodeValidate(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	registered, err := h.auth.Register(body.Username, body.Password, body.Fullname)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"addedUser": registered})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := decodeValidate(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	accessToken, err := h.auth.Login(body.Username, body.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"accessToken": accessToken})
}
