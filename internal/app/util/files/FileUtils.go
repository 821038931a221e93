package files

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"

	apperrors "mp3-transcriber/internal/app/errors"
	"mp3-transcriber/internal/app/model"
)

// GetAllFiles lists the regular files in inputDir whose extension is one of
// extensions (case-insensitive), oldest first.
func GetAllFiles(inputDir string, extensions []string) ([]model.FileInfo, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to read input directory %s", inputDir)
	}

	wanted := lo.Map(extensions, func(ext string, _ int) string { return strings.ToLower(ext) })

	var fileInfos []model.FileInfo
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if !lo.Contains(wanted, strings.ToLower(filepath.Ext(entry.Name()))) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, apperrors.Wrapf(err, "failed to stat %s", entry.Name())
		}
		fileInfos = append(fileInfos, model.FileInfo{
			FullPath: filepath.Join(inputDir, entry.Name()),
			ModTime:  info.ModTime(),
			Name:     entry.Name(),
		})
	}

	sort.SliceStable(fileInfos, func(i, j int) bool {
		return fileInfos[i].ModTime.Before(fileInfos[j].ModTime)
	})

	return fileInfos, nil
}

// ReadOutputFile reads the specified output file and returns its text content.
func ReadOutputFile(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(content)), nil
}
