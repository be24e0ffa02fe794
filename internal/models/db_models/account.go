package db_models

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string `gorm:"default:user"`

	Itineraries []UserItinerary `gorm:"foreignKey:UserID"`
	ForumPosts  []ForumPost     `gorm:"foreignKey:UserID"`
}
