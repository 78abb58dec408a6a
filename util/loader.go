// Package util - helpers for loading serialized saliency maps from disk.
package util

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/xai-lab/go-saliency/saliency"
)

// MapFile represents a serialized saliency map file.
type MapFile struct {
	// Path is the path to the map file.
	Path string
	// Map is the decoded saliency map.
	Map *saliency.Map
	// Index is the map's position in the batch, parsed from the file name.
	Index int
}

// LoadDirectoryMapFiles reads all saliency map files from a directory.
//
// Files are expected to be named map-N.json, each holding a JSON-encoded
// saliency map; other files are ignored. Maps are returned sorted by N.
// Decoded maps are not validated here; validation happens once at the metric
// interface boundary.
//
// Arguments:
//   - dir: Directory path containing map files.
//
// Returns:
//   - []MapFile: Slice of MapFile sorted by batch index.
//   - error: Error if reading or decoding fails.
func LoadDirectoryMapFiles(dir string) ([]MapFile, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read map directory %s", dir)
	}

	var maps []MapFile
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		name := file.Name()
		ext := filepath.Ext(name)
		if ext != ".json" || !strings.HasPrefix(name, "map-") {
			continue
		}

		index, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, "map-"), ext))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse batch index from %s", name)
		}

		mapPath := filepath.Join(dir, name)
		data, err := os.ReadFile(mapPath)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", mapPath)
		}

		var m saliency.Map
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrapf(err, "failed to decode %s", mapPath)
		}

		maps = append(maps, MapFile{
			Path:  mapPath,
			Map:   &m,
			Index: index,
		})
	}

	sort.Slice(maps, func(i, j int) bool {
		return maps[i].Index < maps[j].Index
	})

	return maps, nil
}
