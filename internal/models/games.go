package models

type Game struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"type:varchar(255);not null"`
	MaxPlayers  int    `json:"max_players"`
	AvgDuration int    `json:"avg_duration"`
	Category    string `json:"category" gorm:"type:varchar(100)"`
}

func (Game) TableName() string {
	return "games"
}
