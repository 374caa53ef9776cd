package model

// swagger:model Course
type Course struct {
	BaseModel
	Title       string         `gorm:"size:200;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Instructor  string         `gorm:"size:100" json:"instructor"`
	Category    string         `gorm:"size:50;index" json:"category"`
	Level       string         `gorm:"size:20" json:"level"` // beginner / intermediate / advanced
	CoverURL    string         `gorm:"size:255" json:"coverUrl"`
	Published   bool           `gorm:"default:false;index" json:"published"`
	Modules     []CourseModule `gorm:"constraint:OnDelete:CASCADE" json:"modules,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// swagger:model CourseModule
type CourseModule struct {
	BaseModel
	CourseID uint     `gorm:"index;not null" json:"courseId"`
	Title    string   `gorm:"size:200;not null" json:"title"`
	Order    int      `gorm:"column:sort_order;default:0" json:"order"`
	Lessons  []Lesson `gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE" json:"lessons,omitempty"`
}

func (CourseModule) TableName() string {
	return "course_modules"
}

// swagger:model Lesson
type Lesson struct {
	BaseModel
	ModuleID uint   `gorm:"index;not null" json:"moduleId"`
	Title    string `gorm:"size:200;not null" json:"title"`
	Content  string `gorm:"type:text" json:"content"`
	VideoURL string `gorm:"size:255" json:"videoUrl"`
	Order    int    `gorm:"column:sort_order;default:0" json:"order"`
	Duration int    `gorm:"default:0" json:"duration"` // minutes
}

func (Lesson) TableName() string {
	return "lessons"
}
