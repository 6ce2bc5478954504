package models

// LocationType categorises directory entries.
type LocationType string

const (
	LocationClassroom LocationType = "classroom"
	LocationCafeteria LocationType = "cafeteria"
	LocationLibrary   LocationType = "library"
	LocationOffice    LocationType = "office"
	LocationBathroom  LocationType = "bathroom"
	LocationEntrance  LocationType = "entrance"
	LocationOther     LocationType = "other"
)

// AccessibilityInfo describes the accessibility features of a location.
type AccessibilityInfo struct {
	WheelchairAccessible bool `db:"wheelchair_accessible" json:"wheelchair_accessible"`
	HasElevator          bool `db:"has_elevator" json:"has_elevator"`
	HasBrailleSignage    bool `db:"has_braille_signage" json:"has_braille_signage"`
}

// Location is one entry in the static campus directory.
type Location struct {
	ID            string            `db:"id" json:"id"`
	Name          string            `db:"name" json:"name"`
	Building      string            `db:"building" json:"building"`
	Floor         int               `db:"floor" json:"floor"`
	Room          string            `db:"room" json:"room,omitempty"`
	Type          LocationType      `db:"location_type" json:"type"`
	Accessibility AccessibilityInfo `db:"accessibility" json:"accessibility"`
}

// Direction is the heading of one navigation step.
type Direction string

const (
	DirectionStraight Direction = "straight"
	DirectionLeft     Direction = "left"
	DirectionRight    Direction = "right"
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
)

// NavigationStep is one instruction unit on a route.
type NavigationStep struct {
	Instruction string    `json:"instruction"`
	Distance    int       `json:"distance"`
	Direction   Direction `json:"direction"`
	Landmark    string    `json:"landmark,omitempty"`
}

// Route is a computed path between two directory entries. Distance is the
// sum of step distances in meters; EstimatedTime is minutes at walking
// speed. Routes are computed fresh per request and never cached.
type Route struct {
	From          Location         `json:"from"`
	To            Location         `json:"to"`
	Distance      int              `json:"distance"`
	EstimatedTime int              `json:"estimated_time"`
	Steps         []NavigationStep `json:"steps"`
}
