// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure MySQL (production) or SQLite (tests, local runs)
// connections from the application's configuration. The only relational data the
// engine consults is the store directory used for the agent cross-reference.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table for either dialect. The integrity
// feature uses it to confirm the stores table carries the columns the directory
// queries.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Store directory database unavailable", zap.Error(err))
//	}
//
//	columns, err := database.GetTableColumns(db, "stores")
package database
