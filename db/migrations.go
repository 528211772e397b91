package db

import "embed"

// Migrations holds the versioned schema files applied by golang-migrate.
//
//go:embed migrations/*.sql
var Migrations embed.FS
