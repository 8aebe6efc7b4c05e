// AngelaMos | 2026
// dto.go

package translation

type CreateKeyRequest struct {
	Key   string `json:"key"   validate:"required,max=255"`
	Value string `json:"value" validate:"required,max=5000"`
	Lang  string `json:"lang"  validate:"omitempty,lang"`
}

// UpdateKeyRequest merges only the fields present in the body.
type UpdateKeyRequest struct {
	Key   *string `json:"key"   validate:"omitempty,min=1,max=255"`
	Value *string `json:"value" validate:"omitempty,max=5000"`
	Lang  *string `json:"lang"  validate:"omitempty,lang"`
}

type InitResponse struct {
	Message  string `json:"message"`
	Count    int    `json:"count"`
	Inserted int    `json:"inserted"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}
