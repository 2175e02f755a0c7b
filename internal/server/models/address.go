package models

// Address is a delivery address owned by a single user.
type Address struct {
	ID      string
	UserID  string
	Street  string
	ZipCode string
	City    string
}
