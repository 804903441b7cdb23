// SPDX-License-Identifier: EPL-2.0

package otchain

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// audioExtensions are the file types the default registry can decode.
var audioExtensions = map[string]bool{
	".wav":  true,
	".aif":  true,
	".aiff": true,
	".mp3":  true,
	".ogg":  true,
}

// FindAudioFiles walks dir recursively and returns every supported audio
// file, sorted by path so chain order is deterministic.
func FindAudioFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if audioExtensions[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	sort.Strings(files)
	return files, nil
}
