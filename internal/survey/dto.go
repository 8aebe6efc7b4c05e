// AngelaMos | 2026
// dto.go

package survey

type CreateResponseRequest struct {
	CompteID     string `json:"compte_id"    validate:"required,max=64"`
	Division     string `json:"division"     validate:"required,division"`
	Periode      string `json:"periode"      validate:"required,max=60"`
	NoteGlobale  *int   `json:"note_globale" validate:"omitempty,gte=0,lte=9"`
	Commentaires string `json:"commentaires" validate:"max=5000"`
}

type CreateScoreRequest struct {
	ResponseID string `json:"response_id" validate:"required"`
	Theme      string `json:"theme"       validate:"required,max=120"`
	ItemKey    string `json:"item_key"    validate:"required,max=120"`
	Score      *int   `json:"score"       validate:"required,gte=0,lte=9"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}
