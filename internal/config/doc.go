// Package config reads the optional TOML configuration file.
//
// The file lives at ~/.memlog/config.toml by default:
//
//	notes_path      = "~/notes/memory.md"
//	insert_position = "top"
//	max_results     = 50
//	recency_bonus   = true
//	synonyms        = ["経費:精算,交通費", "standup:daily"]
//
//	[weights]
//	tag_exact     = 8
//	content_match = 3
//
// A missing file resolves to defaults. The core never reads configuration
// ambiently; hosts load it here and pass explicit structs down.
package config
