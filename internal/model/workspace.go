package model

// Workspace is the top-level collaborative container. It is owned by exactly
// one user and shared with zero or more members; membership is tracked
// separately from ownership.
type Workspace struct {
	ID      int64  `json:"id,string"`
	Name    string `json:"name"`
	OwnerID int64  `json:"owner_id,string"`

	// Members is populated on single-workspace reads only.
	Members []User `json:"members,omitempty"`
}

type Board struct {
	ID          int64  `json:"id,string"`
	Name        string `json:"name"`
	WorkspaceID int64  `json:"workspace_id,string"`
}

type List struct {
	ID       int64  `json:"id,string"`
	Name     string `json:"name"`
	Position int    `json:"position"`
	BoardID  int64  `json:"board_id,string"`
}

type Card struct {
	ID          int64   `json:"id,string"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Position    int     `json:"position"`
	ListID      int64   `json:"list_id,string"`
}
