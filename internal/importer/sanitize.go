package importer

import (
	"strings"

	"github.com/dryarchive/worldimport/internal/models"
)

// sanitizeBatch normalizes required-but-possibly-absent text fields in place.
// The store rejects unset required fields, so every nullable text field that
// is required downstream becomes an empty string. Runs after identifier
// reconciliation: blank usernames are derived from the final identifier.
func sanitizeBatch(batch *models.ImportBatch) {
	for i := range batch.Users {
		sanitizeUser(&batch.Users[i])
	}
	for i := range batch.Levels {
		sanitizeLevel(&batch.Levels[i])
	}
	for i := range batch.Assets {
		sanitizeAsset(&batch.Assets[i])
	}
}

func sanitizeUser(u *models.GameUser) {
	if strings.TrimSpace(u.Username) == "" {
		u.Username = "user_" + u.UserID.String()
	}
	u.EmailAddress = emptyIfNil(u.EmailAddress)
	u.PasswordBcrypt = emptyIfNil(u.PasswordBcrypt)
}

func sanitizeLevel(l *models.GameLevel) {
	l.OriginalPublisher = emptyIfNil(l.OriginalPublisher)
}

func sanitizeAsset(a *models.GameAsset) {
	a.AsMainlineIconHash = emptyIfNil(a.AsMainlineIconHash)
	a.AsMipIconHash = emptyIfNil(a.AsMipIconHash)
	a.AsMainlinePhotoHash = emptyIfNil(a.AsMainlinePhotoHash)
}

func emptyIfNil(p *string) *string {
	if p == nil {
		s := ""
		return &s
	}
	return p
}
