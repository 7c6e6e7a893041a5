package models

type Topic struct {
	Slug        string `json:"slug" gorm:"primarykey"`
	Description string `json:"description" gorm:"not null"`
	ImgURL      string `json:"img_url" gorm:"column:img_url"`
}

func (Topic) TableName() string {
	return "topics"
}

const DefaultTopicImgURL = "/assets/placeholder/topic.jpg"
