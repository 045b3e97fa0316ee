package shared

import "fmt"

var (
	// Input errors
	ErrUsage           = fmt.Errorf("wrong number of arguments")
	ErrBatchRead       = fmt.Errorf("import batch unreadable")
	ErrBatchDecode     = fmt.Errorf("import batch malformed")
	ErrNothingToImport = fmt.Errorf("nothing to import")

	// Store errors
	ErrTemplateCopy = fmt.Errorf("template copy failed")
	ErrStoreOpen    = fmt.Errorf("store open failed")
	ErrStoreVersion = fmt.Errorf("store schema version unsupported")
	ErrStoreWrite   = fmt.Errorf("store write failed")

	// Snapshot errors
	ErrMissingSnapshot = fmt.Errorf("relational snapshot not found")
	ErrSnapshotQuery   = fmt.Errorf("snapshot query failed")
)
