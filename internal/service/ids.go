package service

import (
	"strings"

	"github.com/google/uuid"
)

// parseID проверяет непрозрачный строковый идентификатор и приводит его к
// каноническому виду. Сама по себе ошибок не возвращает: каждый вызывающий
// обязан превратить false в domain.ErrInvalidIdentifier.
func parseID(raw string) (uuid.UUID, bool) {
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}
