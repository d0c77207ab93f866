package layout

import (
	"encoding/json"

	"deskbooker/internal/pkg/errs"
)

const ObjectTypeDesk = "desk"

// Object is one placed item in a room layout. Only desk-tagged objects
// matter to the booking flow; everything else is decoration.
type Object struct {
	Type       string `json:"type"`
	DeskID     *int64 `json:"deskId,omitempty"`
	DeskNumber *int   `json:"deskNumber,omitempty"`
}

func (o Object) IsDesk() bool {
	return o.Type == ObjectTypeDesk
}

// Layout is the room map consumed, not owned, by the booking core. The
// core's only question to it is whether an interactive map is usable.
type Layout struct {
	RoomID       int64
	Version      int
	CanvasWidth  int
	CanvasHeight int
	Objects      []Object
}

// document shape of the layout_json column
type document struct {
	SchemaVersion int      `json:"schemaVersion"`
	Objects       []Object `json:"objects"`
}

func Parse(roomID int64, version, canvasWidth, canvasHeight int, layoutJSON []byte) (*Layout, error) {
	var doc document
	if err := json.Unmarshal(layoutJSON, &doc); err != nil {
		return nil, errs.Wrap(err, "failed to decode layout document")
	}

	return &Layout{
		RoomID:       roomID,
		Version:      version,
		CanvasWidth:  canvasWidth,
		CanvasHeight: canvasHeight,
		Objects:      doc.Objects,
	}, nil
}

// HasDeskObjects decides whether the interactive map is shown at all.
// A layout without desk-tagged objects behaves like a missing layout.
func (l *Layout) HasDeskObjects() bool {
	if l == nil {
		return false
	}
	for _, o := range l.Objects {
		if o.IsDesk() {
			return true
		}
	}
	return false
}

// DeskRefs returns desk ids referenced by the layout, for joining
// geometry to desk and booking data.
func (l *Layout) DeskRefs() []int64 {
	if l == nil {
		return nil
	}
	var ids []int64
	for _, o := range l.Objects {
		if o.IsDesk() && o.DeskID != nil {
			ids = append(ids, *o.DeskID)
		}
	}
	return ids
}
