package models

// AppointmentOption is a bookable treatment with its fixed daily slot list.
// The catalog is read-only at request time; availability responses carry a
// copy with Slots reduced to what is still free on the requested date.
type AppointmentOption struct {
	ID    string   `bson:"id" json:"id"`
	Name  string   `bson:"name" json:"name"`   // Treatment identifier, unique within the catalog
	Price float64  `bson:"price" json:"price"` // Price in major currency units
	Slots []string `bson:"slots" json:"slots"` // Time labels in display order, e.g. "8:00 AM"
}
