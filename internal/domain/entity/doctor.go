package entity

// Doctor represents a practitioner provisioned by an administrator.
type Doctor struct {
	ID        int    `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string `gorm:"type:varchar(100);not null" json:"last_name"`

	// Relationships
	Locations []DoctorLocation `gorm:"foreignKey:DoctorID" json:"locations,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
