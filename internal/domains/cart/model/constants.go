package model

import "time"

// Storage keys and retention
const (
	// StorageKeyByUser format: "cart:user:{userID}"
	StorageKeyByUser = "cart:user:%s"

	// StorageTTL is how long a persisted cart survives without activity
	StorageTTL = 30 * 24 * time.Hour
)

// PriceEpsilon is the tolerance used when comparing stored against recomputed
// totals in the self-healing consistency check.
const PriceEpsilon = "0.01"
