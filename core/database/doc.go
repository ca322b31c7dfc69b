// Package database handles the connection to the furniture placement database.
//
// It wraps GORM to configure MySQL (production) or SQLite (tests, single
// node hosts) connections from the application's configuration.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns let adapters verify a shared table
// written by a companion component before they start answering lookups.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("Placement database unavailable", zap.Error(err))
//	}
//
//	missing, err := database.MissingColumns(db, "furniture_placements", []string{"source", "world"})
package database
