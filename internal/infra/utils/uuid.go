package utils

import (
	"github.com/google/uuid"
)

func GenerateUUID() string {
	return uuid.NewString()
}

// IsUUID reports whether s is a canonical textual UUID.
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
