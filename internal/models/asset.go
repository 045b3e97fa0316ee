package models

import (
	"time"

	"gorm.io/datatypes"
)

// GameAsset is an uploaded resource blob. The content hash is both natural
// key and primary key, so assets are self-identifying and merge in place.
type GameAsset struct {
	AssetHash          string    `gorm:"primaryKey" json:"assetHash"`
	OriginalUploaderID ObjectID  `gorm:"type:text;index" json:"originalUploader"`
	UploadDate         time.Time `json:"uploadDate"`
	IsPSP              bool      `json:"isPSP"`
	SizeInBytes        int64     `json:"sizeInBytes"`

	AssetType                int64 `json:"_assetType"`
	AssetSerializationMethod int64 `json:"_assetSerializationMethod"`

	Dependencies datatypes.JSON `json:"dependencies"`

	// Icon-role hashes. A level-icon asset carries its own hash in
	// AsMainlineIconHash; the others stay empty after sanitization.
	AsMainlineIconHash  *string `json:"asMainlineIconHash"`
	AsMipIconHash       *string `json:"asMipIconHash"`
	AsMainlinePhotoHash *string `json:"asMainlinePhotoHash"`
}

// TableName specifies the table name for GORM
func (GameAsset) TableName() string {
	return "game_assets"
}

// IsLevelIcon reports whether the asset has been flagged as a level icon.
func (a GameAsset) IsLevelIcon() bool {
	return a.AsMainlineIconHash != nil && *a.AsMainlineIconHash == a.AssetHash && a.AssetHash != ""
}
