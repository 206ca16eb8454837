package config

import (
	"fmt"
	"path/filepath"
)

type Config struct {
	DataPath    string
	SessionPath string
	DBPath      string
	CatalogPath string
}

func New(dataPath string) (Config, error) {
	if dataPath == "" {
		return Config{}, fmt.Errorf("data path is required")
	}
	return Config{
		DataPath: dataPath,
		// the session file name is versioned; older planner revisions kept
		// their own files and are not migrated
		SessionPath: filepath.Join(dataPath, ".gakuplan", "study-planner-v15.json"),
		DBPath:      filepath.Join(dataPath, ".gakuplan", "gakuplan.db"),
		CatalogPath: filepath.Join(dataPath, "catalog.yaml"),
	}, nil
}
