package models

// Session is one recorded play of a game. GameID is a plain column without
// a foreign key constraint, so a session may point at a game that does not exist.
type Session struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	GameID      int64  `json:"game_id" gorm:"index;not null"`
	Date        string `json:"date" gorm:"type:varchar(10);not null"`
	Winner      string `json:"winner" gorm:"type:varchar(255)"`
	WinnerScore int    `json:"winner_score"`
}

func (Session) TableName() string {
	return "sessions"
}
