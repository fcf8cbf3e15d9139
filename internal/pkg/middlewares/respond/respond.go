package respond

import (
	"encoding/json"
	"net/http"

	"walt/internal/generated/dto"
)

// Error пишет тело в формате dto.Error. После ошибки записи статус уже отправлен клиенту.
func Error(w http.ResponseWriter, status int, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(dto.Error{Message: message})
}
