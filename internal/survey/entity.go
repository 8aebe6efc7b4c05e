// AngelaMos | 2026
// entity.go

package survey

import (
	"time"
)

// Response is one satisfaction form submitted by a customer.
type Response struct {
	ID           string    `db:"id"           json:"id"`
	CompteID     string    `db:"compte_id"    json:"compte_id"`
	Division     string    `db:"division"     json:"division"`
	Periode      string    `db:"periode"      json:"periode"`
	NoteGlobale  *int      `db:"note_globale" json:"note_globale"`
	Commentaires *string   `db:"commentaires" json:"commentaires"`
	SubmittedAt  time.Time `db:"submitted_at" json:"submitted_at"`
}

// Score rates a single item of a response, grouped by theme.
type Score struct {
	ID         string `db:"id"          json:"id"`
	ResponseID string `db:"response_id" json:"response_id"`
	Theme      string `db:"theme"       json:"theme"`
	ItemKey    string `db:"item_key"    json:"item_key"`
	Score      int    `db:"score"       json:"score"`
}
