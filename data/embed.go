// Package data embeds the default anime pilgrimage dataset so the server can
// run with zero external files. Pass CATALOG_PATH or DATABASE_URL to serve a
// different dataset instead.
package data

import _ "embed"

// PilgrimagesJSON contains the raw bytes of anime_pilgrimages.json, embedded
// at compile time: the pilgrimage records plus the day-pass price table.
//
//go:embed anime_pilgrimages.json
var PilgrimagesJSON []byte
