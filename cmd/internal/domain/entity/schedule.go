package entity

const (
	ScheduleStatusPending   = "pending"
	ScheduleStatusConfirmed = "confirmed"
	ScheduleStatusCompleted = "completed"
	ScheduleStatusCancelled = "cancelled"
)

// Schedule is a time-boxed appointment on a single calendar day.
// Date is an opaque "YYYY-MM-DD" key and Time an "HH:MM" 24h clock;
// the pair is never converted across time zones.
type Schedule struct {
	ID              int    `gorm:"primaryKey"`
	UserID          int    `gorm:"not null;index"` // References: users(id)
	ClientID        int    `gorm:"not null"`       // References: clients(id)
	Title           string `gorm:"not null"`
	Description     *string
	Date            string `gorm:"not null;index"`
	Time            string `gorm:"not null"`
	DurationMinutes int    `gorm:"not null"`
	Status          string `gorm:"not null"`
	CreatedAt       int64  `gorm:"not null"`
	UpdatedAt       int64  `gorm:"not null"`

	// Relations
	Owner  User   `gorm:"foreignKey:UserID;references:ID"`
	Client Client `gorm:"foreignKey:ClientID;references:ID"`
}
