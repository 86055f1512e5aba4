package domain

// Department is a selectable department.
type Department struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Position is a job title offered within a department.
type Position struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
}
