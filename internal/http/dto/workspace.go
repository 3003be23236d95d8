package dto

import "corkboard.app/api/internal/model"

type CreateWorkspaceRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type UpdateWorkspaceRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type AddMemberRequest struct {
	UserID int64 `json:"user_id,string" binding:"required"`
}

type WorkspaceResponse struct {
	ID      int64          `json:"id,string"`
	Name    string         `json:"name"`
	OwnerID int64          `json:"owner_id,string"`
	Members []UserResponse `json:"members,omitempty"`
}

func ToWorkspaceResponse(ws *model.Workspace) *WorkspaceResponse {
	resp := &WorkspaceResponse{
		ID:      ws.ID,
		Name:    ws.Name,
		OwnerID: ws.OwnerID,
	}
	if ws.Members != nil {
		resp.Members = ToUserResponses(ws.Members)
	}
	return resp
}

func ToWorkspaceResponses(workspaces []model.Workspace) []WorkspaceResponse {
	resp := make([]WorkspaceResponse, len(workspaces))
	for i := range workspaces {
		resp[i] = *ToWorkspaceResponse(&workspaces[i])
	}
	return resp
}
