package hospitals

type Condition struct {
	Category string `json:"category"`
	Name     string `json:"name"`
}

// QuickCareConditions is the fixed catalogue offered for one-tap searches.
var QuickCareConditions = []Condition{
	{Category: "Emergency", Name: "Chest Pain"},
	{Category: "Heart", Name: "Cardiology"},
	{Category: "Brain", Name: "Neurology"},
	{Category: "Bones", Name: "Orthopedics"},
	{Category: "Skin", Name: "Dermatology"},
	{Category: "Eyes", Name: "Ophthalmology"},
	{Category: "Child", Name: "Pediatrics"},
	{Category: "Women", Name: "Gynecology"},
	{Category: "General", Name: "General Medicine"},
	{Category: "Mental", Name: "Psychiatry"},
	{Category: "Dental", Name: "Dentistry"},
	{Category: "Surgery", Name: "General Surgery"},
}
