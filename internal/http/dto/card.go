package dto

import "corkboard.app/api/internal/model"

type CreateCardRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=10000"`
	Position    int     `json:"position" binding:"min=0"`
}

// UpdateCardRequest is a partial update. Description uses NullableString
// so an explicit null clears it while an omitted field leaves it alone.
type UpdateCardRequest struct {
	Name        *string        `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Description NullableString `json:"description" binding:"-"`
	Position    *int           `json:"position,omitempty" binding:"omitempty,min=0"`
	ListID      *int64         `json:"list_id,omitempty,string"`
}

type CardResponse struct {
	ID          int64   `json:"id,string"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Position    int     `json:"position"`
	ListID      int64   `json:"list_id,string"`
}

func ToCardResponse(c *model.Card) *CardResponse {
	return &CardResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Position:    c.Position,
		ListID:      c.ListID,
	}
}

func ToCardResponses(cards []model.Card) []CardResponse {
	resp := make([]CardResponse, len(cards))
	for i := range cards {
		resp[i] = *ToCardResponse(&cards[i])
	}
	return resp
}
