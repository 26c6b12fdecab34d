package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerateRecordID génère l'identifiant opaque d'un enregistrement de dépenses.
// Assigné une seule fois à la première insertion, jamais réassigné.
func GenerateRecordID() string {
	return fmt.Sprintf("user-%s", uuid.New().String())
}

// GenerateRoastID génère l'identifiant d'un roast archivé
func GenerateRoastID() string {
	return fmt.Sprintf("roast-%s", uuid.New().String())
}
