package response

import (
	"deskbooker/internal/domain/layout"
	"deskbooker/internal/usecase/queries"
)

type RoomResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	NumberOfDesks int    `json:"number_of_desks"`
}

func FromRoomView(rm *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:            rm.ID,
		Name:          rm.Name,
		NumberOfDesks: rm.NumberOfDesks,
	}
}

type DeskResponse struct {
	ID                  int64  `json:"id"`
	Room                int64  `json:"room"`
	DeskNumber          int    `json:"desk_number"`
	LocationDescription string `json:"location_description"`
	IsActive            bool   `json:"is_active"`
}

func FromDeskView(rm *queries.DeskView) *DeskResponse {
	return &DeskResponse{
		ID:                  rm.ID,
		Room:                rm.RoomID,
		DeskNumber:          rm.DeskNumber,
		LocationDescription: rm.LocationDescription,
		IsActive:            rm.IsActive,
	}
}

type LayoutObjectResponse struct {
	Type       string `json:"type"`
	DeskID     *int64 `json:"desk_id,omitempty"`
	DeskNumber *int   `json:"desk_number,omitempty"`
}

type LayoutResponse struct {
	Room           int64                  `json:"room"`
	Version        int                    `json:"version"`
	CanvasWidth    int                    `json:"canvas_width"`
	CanvasHeight   int                    `json:"canvas_height"`
	Objects        []LayoutObjectResponse `json:"objects"`
	HasDeskObjects bool                   `json:"has_desk_objects"`
}

func FromLayout(l *layout.Layout) *LayoutResponse {
	objects := make([]LayoutObjectResponse, len(l.Objects))
	for i, o := range l.Objects {
		objects[i] = LayoutObjectResponse{
			Type:       o.Type,
			DeskID:     o.DeskID,
			DeskNumber: o.DeskNumber,
		}
	}
	return &LayoutResponse{
		Room:           l.RoomID,
		Version:        l.Version,
		CanvasWidth:    l.CanvasWidth,
		CanvasHeight:   l.CanvasHeight,
		Objects:        objects,
		HasDeskObjects: l.HasDeskObjects(),
	}
}
