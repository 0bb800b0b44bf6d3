package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/pkg/apiErrors"
)

var validate = validator.New()

// decodeAndValidate decodifica o corpo JSON em dst e aplica as tags de
// validação. Escreve a resposta de erro e retorna false quando a entrada é
// rejeitada.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		details := make(map[string]string)
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fieldError := range validationErrors {
				details[fieldError.Field()] = fieldError.Tag()
			}
		}
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados obrigatórios ausentes ou inválidos", details)
		return false
	}

	return true
}

// writeJSON serializa a resposta com o content-type correto
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}
