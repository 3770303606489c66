package entity

// Location represents a physical practice address.
type Location struct {
	ID      int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Address string `gorm:"type:varchar(255);not null" json:"address"`

	// Relationships
	Doctors []DoctorLocation `gorm:"foreignKey:LocationID" json:"doctors,omitempty"`
}

func (Location) TableName() string {
	return "locations"
}
