package handler

import (
	"encoding/json"
	goerrors "errors"
	"io"
	"net/http"

	"github.com/forum-dev/forum-api/internal/domain"
	internal_errors "github.com/forum-dev/forum-api/internal/errors"
	"github.com/forum-dev/forum-api/internal/logger"
	"github.com/go-playground/validator/v10"
)

// Response envelope shared by every endpoint. Status is "success" for 2xx,
// "fail" for client errors and "error" for server errors.
type envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err.Error())
	}
}

func writeSuccess(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, envelope{Status: "success", Data: data})
}

func writeFail(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, envelope{Status: "fail", Message: message})
}

// validationMessages maps entity validation failures to the user-facing
// messages returned by the public API.
var validationMessages = map[string]string{
	"THREAD_CREATION.NOT_CONTAIN_NEEDED_PROPERTY":       "tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada",
	"THREAD_CREATION.NOT_MEET_DATA_TYPE_SPECIFICATION":  "tidak dapat membuat thread baru karena tipe data tidak sesuai",
	"COMMENT_CREATION.NOT_CONTAIN_NEEDED_PROPERTY":      "tidak dapat membuat komentar baru karena properti yang dibutuhkan tidak ada",
	"COMMENT_CREATION.NOT_MEET_DATA_TYPE_SPECIFICATION": "tidak dapat membuat komentar baru karena tipe data tidak sesuai",
	"REPLY_CREATION.NOT_CONTAIN_NEEDED_PROPERTY":        "tidak dapat membuat balasan baru karena properti yang dibutuhkan tidak ada",
	"REPLY_CREATION.NOT_MEET_DATA_TYPE_SPECIFICATION":   "tidak dapat membuat balasan baru karena tipe data tidak sesuai",
}

// writeError translates a domain error into its HTTP response. Anything
// without a recognized kind is reported as a server error without leaking
// internals to the client.
func writeError(w http.ResponseWriter, err error) {
	var validationErr *internal_errors.ValidationError
	if goerrors.As(err, &validationErr) {
		message := validationErr.Error()
		if translated, ok := validationMessages[message]; ok {
			message = translated
		}
		writeFail(w, http.StatusBadRequest, message)
		return
	}

	var notFoundErr *internal_errors.NotFoundError
	if goerrors.As(err, &notFoundErr) {
		writeFail(w, http.StatusNotFound, notFoundErr.Error())
		return
	}

	var authorizationErr *internal_errors.AuthorizationError
	if goerrors.As(err, &authorizationErr) {
		writeFail(w, http.StatusForbidden, authorizationErr.Error())
		return
	}

	var statusErr *internal_errors.ErrorWithStatusCode
	if goerrors.As(err, &statusErr) {
		if statusErr.StatusCode >= http.StatusInternalServerError {
			logger.Log.Error("request failed", "error", err.Error())
			writeJSON(w, statusErr.StatusCode, envelope{Status: "error", Message: statusErr.Message})
			return
		}
		writeFail(w, statusErr.StatusCode, statusErr.Message)
		return
	}

	logger.Log.Error("request failed", "error", err.Error())
	writeJSON(w, http.StatusInternalServerError, envelope{Status: "error", Message: "terjadi kegagalan pada server kami"})
}

// decodePayload reads the request body as a raw payload. Entity constructors
// own field presence and type checks, so no validation happens here.
func decodePayload(r io.ReadCloser) (domain.Payload, error) {
	var payload domain.Payload
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "body bukan json yang valid", StatusCode: http.StatusBadRequest}
	}
	return payload, nil
}

// decodeValidate parses the body into a tagged struct and runs struct
// validation. Used by the auth endpoints where the shape is fixed.
func decodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return &internal_errors.ErrorWithStatusCode{Message: "body bukan json yang valid", StatusCode: http.StatusBadRequest}
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		return &internal_errors.ErrorWithStatusCode{Message: "properti yang dibutuhkan tidak ada", StatusCode: http.StatusBadRequest}
	}
	return nil
}
