package models

// Word represents the words table (vocabulary pairs)
type Word struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	EnglishWord  string `gorm:"size:255" json:"english_word"`
	RomanianWord string `gorm:"size:255" json:"romanian_word"`
}

// TableName specifies the table name for Word model
func (Word) TableName() string {
	return "words"
}
