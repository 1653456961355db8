package model

import (
	"time"
)

type Book struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"size:255;not null" validate:"notblank,max=255"`
	Author    string    `gorm:"size:255;not null" validate:"notblank,max=255"`
	Genre     string    `gorm:"size:100" validate:"max=100"`
	Rating    int       `validate:"min=1,max=5"`
	Status    Status    `gorm:"size:50" validate:"bookstatus"`
	Notes     string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP"`
}

func (Book) TableName() string {
	return "books"
}
