package pins

// Category is the closed set of pin statuses. Rendering, counting, and
// filtering all consume this one table; there is no second mapping to drift.
type Category string

const (
	StatusCritical Category = "critical"
	StatusWarning  Category = "warning"
	StatusActive   Category = "active"
	StatusPast     Category = "past"
	StatusWeather  Category = "weather"
)

// DefaultStatus is the styling fallback for unrecognized statuses.
const DefaultStatus = StatusActive

// Categories lists every status in display order.
var Categories = []Category{
	StatusCritical,
	StatusWarning,
	StatusActive,
	StatusPast,
	StatusWeather,
}

// Style is the marker presentation for one category.
type Style struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var styles = map[Category]Style{
	StatusCritical: {Label: "Critical Need", Color: "#d7263d"},
	StatusWarning:  {Label: "Warning", Color: "#f49d37"},
	StatusActive:   {Label: "Active Deployment", Color: "#1b998b"},
	StatusPast:     {Label: "Past Deployment", Color: "#8d99ae"},
	StatusWeather:  {Label: "Weather Event", Color: "#3066be"},
}

func (c Category) Valid() bool {
	_, ok := styles[c]
	return ok
}

// Style returns the category's presentation, falling back to the default
// category's styling for anything unrecognized.
func (c Category) Style() Style {
	if s, ok := styles[c]; ok {
		return s
	}
	return styles[DefaultStatus]
}

// Normalize coerces raw input to a known category, defaulting when unknown.
func Normalize(raw string) Category {
	c := Category(raw)
	if c.Valid() {
		return c
	}
	return DefaultStatus
}
