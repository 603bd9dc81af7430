package models

// Question represents the questions table (exam questions)
type Question struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Type          string `gorm:"size:50" json:"type"`
	QuestionText  string `gorm:"size:1000" json:"question_text"`
	CorrectAnswer string `gorm:"size:500" json:"correct_answer"`
	OtherAnswers  string `gorm:"size:1000" json:"other_answers"`
	TestID        uint   `gorm:"column:test_id" json:"test_id"`
	SubcategoryID uint   `gorm:"column:subcategory_id;index" json:"subcategory_id"`
}

// TableName specifies the table name for Question model
func (Question) TableName() string {
	return "questions"
}

// QuestionDTO is the wire shape for an exam question
type QuestionDTO struct {
	ID            uint   `json:"id"`
	Type          string `json:"type"`
	QuestionText  string `json:"question_text"`
	CorrectAnswer string `json:"correct_answer"`
	OtherAnswers  string `json:"other_answers"`
	TestID        uint   `json:"test_id"`
	SubcategoryID uint   `json:"subcategory_id"`
}

// ToQuestionDTO maps a persisted question to its wire shape
func ToQuestionDTO(q Question) QuestionDTO {
	return QuestionDTO{
		ID:            q.ID,
		Type:          q.Type,
		QuestionText:  q.QuestionText,
		CorrectAnswer: q.CorrectAnswer,
		OtherAnswers:  q.OtherAnswers,
		TestID:        q.TestID,
		SubcategoryID: q.SubcategoryID,
	}
}
