// Package config loads list settings from YAML or TOML files.
//
//	keys = ["red", "green"]
//	strict_keys = true
//	reclaim_empty = false
//	capacity = 1024
//	log_level = "debug"
//	log_format = "json"
//	copy_codec = "msgpack"
//
// The file format is chosen by extension: .yaml and .yml are parsed with
// gopkg.in/yaml.v3, .toml with github.com/BurntSushi/toml.
package config
