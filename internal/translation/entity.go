// AngelaMos | 2026
// entity.go

package translation

import (
	"time"
)

// Key is one editable interface label for a language.
type Key struct {
	ID        string    `db:"id"         json:"id"`
	Key       string    `db:"key"        json:"key"`
	Value     string    `db:"value"      json:"value"`
	Lang      string    `db:"lang"       json:"lang"`
	UpdatedBy string    `db:"updated_by" json:"updated_by"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
