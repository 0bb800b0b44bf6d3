package utils

import "time"

// DateLayout é o formato de data aceito em toda a API.
const DateLayout = "2006-01-02"

// ParseDate converte uma data no formato da API.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(DateLayout, dateStr)
}
