package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/Dosada05/hero-registry/services"
	"github.com/Dosada05/hero-registry/validation"
	"github.com/go-chi/chi/v5"
)

type jsonResponse map[string]interface{}

// readJSON декодирует тело запроса. Проблемы, привязываемые к конкретному
// полю (неверный JSON-тип, неизвестный ключ), возвращаются как
// validation.Errors и уходят клиенту со статусом 422.
func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	maxBytes := 1_048_576 // 1MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError

		switch {
		case errors.As(err, &syntaxError):
			return validation.Errors{"body": fmt.Sprintf("contains badly-formed JSON (at character %d)", syntaxError.Offset)}
		case errors.Is(err, io.ErrUnexpectedEOF):
			return validation.Errors{"body": "contains badly-formed JSON"}
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return validation.Errors{unmarshalTypeError.Field: "contains incorrect JSON type"}
			}
			return validation.Errors{"body": fmt.Sprintf("contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)}
		case errors.Is(err, io.EOF):
			return validation.Errors{"body": "must not be empty"}
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			fieldName = strings.Trim(fieldName, `"`)
			return validation.Errors{fieldName: "unknown field"}
		case err.Error() == "http: request body too large":
			return validation.Errors{"body": fmt.Sprintf("must not be larger than %d bytes", maxBytes)}
		case errors.As(err, &invalidUnmarshalError):
			panic(err) // Ошибка программиста: в dst передан не указатель
		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return validation.Errors{"body": "must only contain a single JSON value"}
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	if err != nil {
		return err
	}

	return nil
}

func errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	env := jsonResponse{"error": message}
	err := writeJSON(w, status, env, nil)
	if err != nil {
		slog.Error("failed to write error response",
			slog.String("method", r.Method),
			slog.String("uri", r.URL.RequestURI()),
			slog.Any("error", err),
		)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("internal server error",
		slog.String("method", r.Method),
		slog.String("uri", r.URL.RequestURI()),
		slog.Any("error", err),
	)
	message := "the server encountered a problem and could not process your request"
	errorResponse(w, r, http.StatusInternalServerError, message)
}

func badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func failedValidationResponse(w http.ResponseWriter, r *http.Request, errors map[string]string) {
	errorResponse(w, r, http.StatusUnprocessableEntity, errors)
}

func notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "the requested resource could not be found"
	errorResponse(w, r, http.StatusNotFound, message)
}

// mapServiceErrorToHTTP преобразует ошибки сервисного слоя в HTTP-ответы.
func mapServiceErrorToHTTP(w http.ResponseWriter, r *http.Request, err error) {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		failedValidationResponse(w, r, vErrs)

	case errors.Is(err, services.ErrHeroNotFound),
		errors.Is(err, services.ErrTeamNotFound):
		notFoundResponse(w, r)

	default:
		serverErrorResponse(w, r, err)
	}
}

func getIDFromURL(r *http.Request, paramName string) (int, error) {
	idStr := chi.URLParam(r, paramName)
	if idStr == "" {
		return 0, fmt.Errorf("missing %s in URL path", paramName)
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s format: %q", paramName, idStr)
	}
	return id, nil
}

// queryIntParam читает необязательный числовой query-параметр.
// Если параметр не задан, возвращает nil; нечисловое значение
// считается провалом валидации.
func queryIntParam(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, validation.Errors{name: "must be an integer"}
	}
	return &value, nil
}
