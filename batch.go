// SPDX-License-Identifier: EPL-2.0

package otchain

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/otchain/chain"
	"github.com/ik5/otchain/formats/wav"
)

// RunBatch prepares every audio file under inputDir individually and
// writes each one as a WAV into outputDir. Files that fail to decode are
// skipped with a warning; the run only fails when nothing can be
// processed or the output directory is unusable.
func RunBatch(inputDir, outputDir string, opts PrepareOptions, bitDepth int) ([]chain.Diagnostic, error) {
	files, err := FindAudioFiles(inputDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoAudioFiles, inputDir)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", outputDir, err)
	}

	var diags []chain.Diagnostic
	processed := 0
	used := make(map[string]bool)

	for _, path := range files {
		c, err := PrepareClip(path, opts)
		if err != nil {
			diags = append(diags, chain.Warnf("skipping %s: %v", path, err))
			continue
		}

		// Inputs that differ only by extension would land on the same
		// output name; uniquify instead of overwriting.
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		name := base + ".wav"
		if used[name] {
			for n := 2; used[name]; n++ {
				name = fmt.Sprintf("%s_%d.wav", base, n)
			}
			diags = append(diags, chain.Warnf("output name for %s already taken, writing %s", filepath.Base(path), name))
		}
		used[name] = true

		outPath := filepath.Join(outputDir, name)

		f, err := os.Create(outPath)
		if err != nil {
			return diags, fmt.Errorf("creating %s: %w", outPath, err)
		}

		err = wav.Write(f, c.SampleRate, c.Channels, bitDepth, c.Data)
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			os.Remove(outPath)
			return diags, fmt.Errorf("writing %s: %w", outPath, err)
		}

		processed++
	}

	if processed == 0 {
		return diags, chain.ErrEmptyInput
	}

	return diags, nil
}
