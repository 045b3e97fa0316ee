package models

import (
	"time"

	"gorm.io/datatypes"
)

// GameUser is a player account. UserID is the primary key; Username is the
// natural key the importer reconciles on, so it must be non-empty once a
// batch has been sanitized.
type GameUser struct {
	UserID   ObjectID `gorm:"primaryKey;type:text" json:"userId"`
	Username string   `gorm:"index" json:"username"`

	EmailAddress         *string `json:"emailAddress"`
	PasswordBcrypt       *string `json:"passwordBcrypt"`
	EmailAddressVerified bool    `json:"emailAddressVerified"`
	ShouldResetPassword  bool    `json:"shouldResetPassword"`

	IconHash     string    `json:"iconHash"`
	ForceMatch   *ObjectID `gorm:"type:text" json:"forceMatch"`
	PspIconHash  string    `json:"pspIconHash"`
	VitaIconHash string    `json:"vitaIconHash"`
	BetaIconHash string    `json:"betaIconHash"`

	FilesizeQuotaUsage int64  `json:"filesizeQuotaUsage"`
	Description        string `json:"description"`
	LocationX          int64  `json:"locationX"`
	LocationY          int64  `json:"locationY"`

	JoinDate time.Time      `json:"joinDate"`
	Pins     datatypes.JSON `json:"pins"`

	BetaPlanetsHash string `json:"betaPlanetsHash"`
	Lbp2PlanetsHash string `json:"lbp2PlanetsHash"`
	Lbp3PlanetsHash string `json:"lbp3PlanetsHash"`
	VitaPlanetsHash string `json:"vitaPlanetsHash"`
	YayFaceHash     string `json:"yayFaceHash"`
	BooFaceHash     string `json:"booFaceHash"`
	MehFaceHash     string `json:"mehFaceHash"`

	AllowIpAuthentication     bool       `json:"allowIpAuthentication"`
	BanReason                 *string    `json:"banReason"`
	BanExpiryDate             *time.Time `json:"banExpiryDate"`
	LastLoginDate             time.Time  `json:"lastLoginDate"`
	RpcnAuthenticationAllowed bool       `json:"rpcnAuthenticationAllowed"`
	PsnAuthenticationAllowed  bool       `json:"psnAuthenticationAllowed"`

	ProfileVisibility int64 `json:"_profileVisibility"`
	LevelVisibility   int64 `json:"_levelVisibility"`

	PresenceServerAuthToken *string        `json:"presenceServerAuthToken"`
	RootPlaylist            datatypes.JSON `json:"rootPlaylist"`
	UnescapeXmlSequences    bool           `json:"unescapeXmlSequences"`
	ShowModdedContent       bool           `json:"showModdedContent"`
	Role                    int64          `json:"_role"`
}

// TableName specifies the table name for GORM
func (GameUser) TableName() string {
	return "game_users"
}
