package importer

import "github.com/dryarchive/worldimport/internal/models"

// linkOwnership attaches every level and asset in the batch to owner,
// overwriting any owner already present in the incoming data. The importer
// assumes a single-owner migration, so the caller picks the owner once and
// passes it down explicitly. Assets whose content hash matches a level's
// icon hash are flagged as level icons by copying their own hash into the
// mainline icon slot.
func linkOwnership(batch *models.ImportBatch, owner *models.GameUser) {
	for i := range batch.Levels {
		batch.Levels[i].PublisherID = owner.UserID
	}

	icons := make(map[string]struct{}, len(batch.Levels))
	for _, level := range batch.Levels {
		if level.IconHash != "" {
			icons[level.IconHash] = struct{}{}
		}
	}

	for i := range batch.Assets {
		asset := &batch.Assets[i]
		asset.OriginalUploaderID = owner.UserID
		if _, ok := icons[asset.AssetHash]; ok {
			hash := asset.AssetHash
			asset.AsMainlineIconHash = &hash
		}
	}
}
