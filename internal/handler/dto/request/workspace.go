package request

type CreateWorkspaceRequest struct {
	RoomType    string  `json:"room_type" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Capacity    int     `json:"capacity" binding:"required"`
	Description string  `json:"description,omitempty"`
	BasePrice   float64 `json:"base_price" binding:"required"`
}

type UpdateWorkspaceRequest struct {
	RoomType    *string  `json:"room_type,omitempty"`
	Name        *string  `json:"name,omitempty"`
	Capacity    *int     `json:"capacity,omitempty"`
	Description *string  `json:"description,omitempty"`
	BasePrice   *float64 `json:"base_price,omitempty"`
}
