package models

import (
	"time"

	"gorm.io/datatypes"
)

// GameLevel is a published level. LevelID is author-assigned upstream and
// stable across imports, so it doubles as natural key and primary key; the
// importer merges levels by it directly.
type GameLevel struct {
	LevelID     int64  `gorm:"primaryKey;autoIncrement:false" json:"levelId"`
	IsAdventure bool   `json:"isAdventure"`
	Title       string `json:"title"`
	IconHash    string `json:"iconHash"`
	Description string `json:"description"`
	LocationX   int64  `json:"locationX"`
	LocationY   int64  `json:"locationY"`

	RootResource string    `json:"rootResource"`
	PublishDate  time.Time `json:"publishDate"`
	UpdateDate   time.Time `json:"updateDate"`

	MinPlayers           int64 `json:"minPlayers"`
	MaxPlayers           int64 `json:"maxPlayers"`
	EnforceMinMaxPlayers bool  `json:"enforceMinMaxPlayers"`
	SameScreenGame       bool  `json:"sameScreenGame"`

	DateTeamPicked *time.Time `json:"dateTeamPicked"`
	IsModded       bool       `json:"isModded"`
	BackgroundGuid *string    `json:"backgroundGuid"`

	GameVersion int64 `json:"_gameVersion"`
	LevelType   int64 `json:"_levelType"`
	StoryID     int64 `json:"storyId"`

	IsLocked   bool    `json:"isLocked"`
	IsSubLevel bool    `json:"isSubLevel"`
	IsCopyable bool    `json:"isCopyable"`
	Score      float64 `json:"score"`

	SkillRewards datatypes.JSON `json:"_skillRewards"`
	Reviews      datatypes.JSON `json:"reviews"`

	PublisherID       ObjectID `gorm:"type:text;index" json:"publisher"`
	OriginalPublisher *string  `json:"originalPublisher"`
	IsReUpload        bool     `json:"isReUpload"`
}

// TableName specifies the table name for GORM
func (GameLevel) TableName() string {
	return "game_levels"
}
