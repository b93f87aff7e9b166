/*
Package teletext is a library for maintaining teletext test fixtures: raw
pages decoded from page hashes, kept in a small database, and the mosaic
character bitmaps consumed alongside them.
*/
package teletext

import "log"

type Generator struct {
	db     *PageDB
	logger *log.Logger
}

func New(db *PageDB, logger *log.Logger) *Generator {
	return &Generator{
		db:     db,
		logger: logger,
	}
}
