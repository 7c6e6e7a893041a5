package models

type User struct {
	Username  string `json:"username" gorm:"primarykey"`
	Name      string `json:"name" gorm:"not null"`
	AvatarURL string `json:"avatar_url" gorm:"column:avatar_url"`
}

func (User) TableName() string {
	return "users"
}
