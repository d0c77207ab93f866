package response

import (
	"deskbooker/internal/domain/booking"
	"deskbooker/internal/usecase/mapsession"
	"deskbooker/internal/usecase/queries"
)

// DeskBookingResponse describes the booking shown when a desk is
// occupied or inspected on the map.
type DeskBookingResponse struct {
	Booking       *queries.BookingView `json:"booking"`
	IsMine        bool                 `json:"is_mine"`
	MultipleUsers bool                 `json:"multiple_users"`
}

func FromDeskBookingDetail(d *booking.DeskBookingDetail, actor booking.Actor) *DeskBookingResponse {
	return &DeskBookingResponse{
		Booking:       queries.ViewFromBooking(d.Booking, actor),
		IsMine:        d.IsMine,
		MultipleUsers: d.MultipleUsers,
	}
}

type DeskAvailabilityResponse struct {
	ID         int64                `json:"id"`
	DeskNumber int                  `json:"desk_number"`
	Status     string               `json:"status"`
	Booking    *DeskBookingResponse `json:"booking,omitempty"`
}

type AvailabilityResponse struct {
	Room           int64                      `json:"room"`
	Date           string                     `json:"date"`
	Period         string                     `json:"period"`
	TotalDesks     int                        `json:"total_desks"`
	AvailableDesks int                        `json:"available_desks"`
	BookedDesks    int                        `json:"booked_desks"`
	FreeDeskIDs    []int64                    `json:"free_desk_ids"`
	Desks          []DeskAvailabilityResponse `json:"desks"`
}

func FromAvailabilityView(view *queries.AvailabilityView, desks []*queries.DeskView, actor booking.Actor) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		Room:           view.RoomID,
		Date:           view.Date.String(),
		Period:         view.Period.String(),
		TotalDesks:     view.TotalDesks,
		AvailableDesks: view.AvailableDesks,
		BookedDesks:    view.BookedDesks,
		FreeDeskIDs:    view.FreeDeskIDs,
		Desks:          make([]DeskAvailabilityResponse, len(desks)),
	}
	if resp.FreeDeskIDs == nil {
		resp.FreeDeskIDs = []int64{}
	}

	for i, d := range desks {
		item := DeskAvailabilityResponse{
			ID:         d.ID,
			DeskNumber: d.DeskNumber,
			Status:     view.Statuses[d.ID].String(),
		}
		if detail, ok := view.Details[d.ID]; ok {
			item.Booking = FromDeskBookingDetail(detail, actor)
		}
		resp.Desks[i] = item
	}
	return resp
}

type MapSnapshotResponse struct {
	State         string                         `json:"state"`
	Message       string                         `json:"message"`
	Interactive   bool                           `json:"interactive"`
	Room          int64                          `json:"room"`
	Date          string                         `json:"date,omitempty"`
	Period        string                         `json:"period,omitempty"`
	SelectedDesk  int64                          `json:"selected_desk,omitempty"`
	InspectedDesk int64                          `json:"inspected_desk,omitempty"`
	HasLayout     bool                           `json:"has_layout"`
	Statuses      map[int64]string               `json:"statuses"`
	StatusesByNum map[int]string                 `json:"statuses_by_desk_number"`
	Details       map[int64]*DeskBookingResponse `json:"details"`
}

func FromMapSnapshot(snap mapsession.Snapshot, actor booking.Actor) *MapSnapshotResponse {
	statuses := make(map[int64]string, len(snap.Statuses))
	for id, status := range snap.Statuses {
		statuses[id] = status.String()
	}
	statusesByNum := make(map[int]string, len(snap.StatusesByNum))
	for num, status := range snap.StatusesByNum {
		statusesByNum[num] = status.String()
	}
	details := make(map[int64]*DeskBookingResponse, len(snap.Details))
	for id, detail := range snap.Details {
		details[id] = FromDeskBookingDetail(detail, actor)
	}

	return &MapSnapshotResponse{
		State:         snap.State.String(),
		Message:       snap.Message,
		Interactive:   snap.Interactive,
		Room:          snap.RoomID,
		Date:          snap.Date.String(),
		Period:        snap.Period.String(),
		SelectedDesk:  snap.SelectedDesk,
		InspectedDesk: snap.InspectedDesk,
		HasLayout:     snap.HasLayout,
		Statuses:      statuses,
		StatusesByNum: statusesByNum,
		Details:       details,
	}
}
