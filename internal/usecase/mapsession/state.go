package mapsession

// MapState names the phase the interactive room map is in. The session
// is re-entrant: any input change can move it back through the loading
// states.
type MapState string

const (
	StateNoRoomSelected       MapState = "noRoomSelected"
	StateLayoutLoading        MapState = "layoutLoading"
	StateLayoutMissing        MapState = "layoutMissing"
	StateDateNotSelected      MapState = "dateNotSelected"
	StateAvailabilityLoading  MapState = "availabilityLoading"
	StateAvailabilityReady    MapState = "availabilityReady"
	StateSelectionInvalidated MapState = "selectionInvalidated"
	StateAvailabilityError    MapState = "availabilityError"
)

// Interactive reports whether desk clicks are accepted in this state.
func (s MapState) Interactive() bool {
	return s == StateAvailabilityReady || s == StateSelectionInvalidated
}

func (s MapState) String() string {
	return string(s)
}

// Human-readable status line per state, surfaced next to the map.
var stateMessages = map[MapState]string{
	StateNoRoomSelected:       "Select a room to view layout",
	StateLayoutLoading:        "Loading room layout...",
	StateLayoutMissing:        "No room map available yet. Use desk dropdown for now.",
	StateDateNotSelected:      "Pick a date and period to check live desk availability.",
	StateAvailabilityLoading:  "Loading desk availability...",
	StateAvailabilityReady:    "Desk map is interactive. Click an available desk to select it.",
	StateSelectionInvalidated: "Selected desk is unavailable for this time. Please choose another desk.",
	StateAvailabilityError:    "Could not load availability. Please try again.",
}

func (s MapState) Message() string {
	return stateMessages[s]
}
