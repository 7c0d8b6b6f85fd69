package dataset

import (
	"path"
	"strings"
)

const (
	DriverFile   = "file"
	DriverBucket = "bucket"
)

// Config describes where the listing dataset lives.
type Config struct {
	// Driver selects the backend (file, bucket).
	Driver string `mapstructure:"driver" default:"file"`
	// Root is the data directory for the file driver, or the object prefix for the bucket driver.
	Root string `mapstructure:"root" default:"data"`
	// IndexFile is the country index, relative to Root.
	IndexFile string `mapstructure:"index_file" default:"countries.json"`
	// ShardDir holds one <CODE>.json shard per country, relative to Root.
	ShardDir string `mapstructure:"shard_dir" default:"properties"`
	// StoresFile is the store directory file, relative to Root.
	StoresFile string `mapstructure:"stores_file" default:"stores.json"`
	// StoreDirectory selects the store directory backend (file, database).
	StoreDirectory string `mapstructure:"store_directory" default:"file"`
}

// NormalizeCode trims and upper-cases a country code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IndexPath returns the slash-separated location of the country index.
func (c Config) IndexPath() string {
	return path.Join(c.Root, c.IndexFile)
}

// ShardPath returns the slash-separated location of a country's shard.
func (c Config) ShardPath(code string) string {
	return path.Join(c.Root, c.ShardDir, NormalizeCode(code)+".json")
}

// StoresPath returns the slash-separated location of the store directory file.
func (c Config) StoresPath() string {
	return path.Join(c.Root, c.StoresFile)
}
