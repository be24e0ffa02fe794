package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ForumPost struct {
	BaseModel
	UserID   uuid.UUID `gorm:"index"`
	Title    string
	Body     string
	Category string         `gorm:"index"`
	Tags     pq.StringArray `gorm:"type:text[]"`

	Replies []ForumReply `gorm:"foreignKey:PostID"`
}

type ForumReply struct {
	BaseModel
	PostID uuid.UUID `gorm:"index"`
	UserID uuid.UUID
	Body   string
}
