package dto

import "corkboard.app/api/internal/model"

type CreateListRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=255"`
	Position int    `json:"position" binding:"min=0"`
}

type UpdateListRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Position *int    `json:"position,omitempty" binding:"omitempty,min=0"`
}

type ListResponse struct {
	ID       int64  `json:"id,string"`
	Name     string `json:"name"`
	Position int    `json:"position"`
	BoardID  int64  `json:"board_id,string"`
}

func ToListResponse(l *model.List) *ListResponse {
	return &ListResponse{
		ID:       l.ID,
		Name:     l.Name,
		Position: l.Position,
		BoardID:  l.BoardID,
	}
}

func ToListResponses(lists []model.List) []ListResponse {
	resp := make([]ListResponse, len(lists))
	for i := range lists {
		resp[i] = *ToListResponse(&lists[i])
	}
	return resp
}
