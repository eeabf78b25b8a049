package settings

// OfficeSettings is a singleton document read by the attendance engine on every
// clock-in.
type OfficeSettings struct {
	OfficeLocation Location `json:"officeLocation"`
	ClockInRadius  int      `json:"clockInRadius"` // meters
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
