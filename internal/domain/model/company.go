package model

// Company is a reporting entity registered with the bureau. It is reference
// data managed through the admin area.
type Company struct {
	ID             int64
	Name           string
	NIT            string
	TransUnionCode string
	Address        string
	Phone          string
	Email          string
	Active         bool
}
