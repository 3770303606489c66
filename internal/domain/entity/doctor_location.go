package entity

// DoctorLocation associates one doctor practicing at one location. It is the
// unit against which availability templates and appointments are scoped.
// A doctor may practice at several locations and a location may host several
// doctors; the (doctor_id, location_id) pair is unique at the application
// level.
type DoctorLocation struct {
	ID         int `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID   int `gorm:"not null;index" json:"doctor_id"`
	LocationID int `gorm:"not null;index" json:"location_id"`

	// Relationships
	Doctor   Doctor   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Location Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}

func (DoctorLocation) TableName() string {
	return "doctor_locations"
}
