package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Driver-specific unique violation messages. Postgres reports code 23505,
// MySQL 1062 and sqlite 2067, but only the text survives gorm's wrapping.
var duplicateKeyHints = []string{
	"duplicate key value violates unique constraint",
	"Error 1062",
	"UNIQUE constraint failed",
}

func IsDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	for _, hint := range duplicateKeyHints {
		if strings.Contains(msg, hint) {
			return true
		}
	}
	return false
}
