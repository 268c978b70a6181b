package domain

// Department is an organizational unit. Two departments are the same unit
// when their IDs match, regardless of name.
type Department struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewDepartment(id, name string) *Department {
	return &Department{ID: id, Name: name}
}

// Equal reports whether d and other identify the same department.
func (d *Department) Equal(other *Department) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.ID == other.ID
}

func (d *Department) String() string {
	return d.Name
}
