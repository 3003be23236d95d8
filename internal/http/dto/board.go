package dto

import "corkboard.app/api/internal/model"

type CreateBoardRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type BoardResponse struct {
	ID          int64  `json:"id,string"`
	Name        string `json:"name"`
	WorkspaceID int64  `json:"workspace_id,string"`
}

func ToBoardResponse(b *model.Board) *BoardResponse {
	return &BoardResponse{
		ID:          b.ID,
		Name:        b.Name,
		WorkspaceID: b.WorkspaceID,
	}
}

func ToBoardResponses(boards []model.Board) []BoardResponse {
	resp := make([]BoardResponse, len(boards))
	for i := range boards {
		resp[i] = *ToBoardResponse(&boards[i])
	}
	return resp
}
