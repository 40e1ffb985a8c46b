package models

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// FileCategory is a coarse classification of a file by extension
type FileCategory string

const (
	CategoryVideo    FileCategory = "video"
	CategoryImage    FileCategory = "image"
	CategoryDocument FileCategory = "document"
	CategoryArchive  FileCategory = "archive"
	CategoryOther    FileCategory = "other"
)

// Categories lists every category in display order
var Categories = []FileCategory{
	CategoryVideo,
	CategoryImage,
	CategoryDocument,
	CategoryArchive,
	CategoryOther,
}

// extensionCategories maps lower-case extensions (without dot) to categories
var extensionCategories = map[string]FileCategory{
	"mp4": CategoryVideo, "avi": CategoryVideo, "mkv": CategoryVideo, "mov": CategoryVideo,
	"wmv": CategoryVideo, "flv": CategoryVideo, "webm": CategoryVideo, "m4v": CategoryVideo,

	"jpg": CategoryImage, "jpeg": CategoryImage, "png": CategoryImage, "gif": CategoryImage,
	"bmp": CategoryImage, "tiff": CategoryImage, "svg": CategoryImage, "webp": CategoryImage,

	"pdf": CategoryDocument, "doc": CategoryDocument, "docx": CategoryDocument,
	"txt": CategoryDocument, "rtf": CategoryDocument, "odt": CategoryDocument,
	"xls": CategoryDocument, "xlsx": CategoryDocument, "ppt": CategoryDocument,
	"pptx": CategoryDocument,

	"zip": CategoryArchive, "rar": CategoryArchive, "7z": CategoryArchive,
	"tar": CategoryArchive, "gz": CategoryArchive, "bz2": CategoryArchive,
	"xz": CategoryArchive,
}

// CategoryOf derives the category of path from its extension, case-insensitively.
// A leading dot of the base name does not start an extension, so ".mp4" is other.
func CategoryOf(path string) FileCategory {
	name := strings.TrimLeft(filepath.Base(path), ".")
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if category, ok := extensionCategories[ext]; ok {
		return category
	}
	return CategoryOther
}

// ParseCategory parses a category tag, case-insensitively
func ParseCategory(s string) (FileCategory, error) {
	category := FileCategory(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if category == known {
			return category, nil
		}
	}
	return "", fmt.Errorf("unknown file type %q (valid: video, image, document, archive, other)", s)
}

// CategoryStats aggregates entries of one category
type CategoryStats struct {
	Category FileCategory
	Count    int
	Bytes    int64
}

// Summarize groups entries by category, largest total first.
// Categories without entries are omitted.
func Summarize(entries []FileEntry) []CategoryStats {
	grouped := make(map[FileCategory]*CategoryStats)
	for _, entry := range entries {
		category := CategoryOf(entry.Path)
		stats, ok := grouped[category]
		if !ok {
			stats = &CategoryStats{Category: category}
			grouped[category] = stats
		}
		stats.Count++
		stats.Bytes += entry.Size
	}

	summary := make([]CategoryStats, 0, len(grouped))
	for _, category := range Categories {
		if stats, ok := grouped[category]; ok {
			summary = append(summary, *stats)
		}
	}
	sort.SliceStable(summary, func(i, j int) bool {
		return summary[i].Bytes > summary[j].Bytes
	})
	return summary
}
