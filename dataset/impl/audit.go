package impl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/visionex-project/textblocks/dataset/impl/vision"
	"github.com/visionex-project/textblocks/pkg/utils"
)

// A generated image picked for OCR verification.
type AuditSample struct {
	Font string
	Path string
	// Snippet recovered from the file name. E.g., "quick_brown_fox"
	Snippet string
	Offset  int
}

// OCR agreement for one font.
type AuditReport struct {
	Font       string
	Matched    int
	Mismatched int
	// Images that could not be read or recognized.
	Failed int
}

// CollectAuditSamples takes up to limit generated images from every font directory under root,
// in file name order. Files whose names were not produced by Filename are ignored.
func CollectAuditSamples(root string, limit int) ([]AuditSample, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset directory %s: %w", root, err)
	}

	var samples []AuditSample
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		fontDir := filepath.Join(root, entry.Name())
		files, err := os.ReadDir(fontDir)
		if err != nil {
			return nil, fmt.Errorf("failed to read font directory %s: %w", fontDir, err)
		}
		names := utils.Sort(utils.Map(files, func(file os.DirEntry) string {
			return file.Name()
		}))

		taken := 0
		for _, name := range names {
			if taken >= limit {
				break
			}
			_, offset, snippet, err := ParseFilename(name)
			if err != nil {
				continue
			}
			samples = append(samples, AuditSample{
				Font:    entry.Name(),
				Path:    filepath.Join(fontDir, name),
				Snippet: snippet,
				Offset:  offset,
			})
			taken++
		}
	}
	return samples, nil
}

// Audit runs OCR on every sample and compares the first recognized line with the snippet in its name.
// Per-image failures are logged and counted. Only context cancellation aborts the audit.
func Audit(ctx context.Context, client vision.Client, samples []AuditSample, snippetLength int, logger *log.Logger) ([]AuditReport, error) {
	reports := map[string]*AuditReport{}
	for _, sample := range samples {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		report, ok := reports[sample.Font]
		if !ok {
			report = &AuditReport{Font: sample.Font}
			reports[sample.Font] = report
		}

		content, err := os.ReadFile(sample.Path)
		if err != nil {
			logger.Error("Failed to read image", "path", sample.Path, "err", err)
			report.Failed++
			continue
		}
		line, err := vision.FirstLine(ctx, client, content)
		if err != nil {
			logger.Error("Failed to recognize image", "path", sample.Path, "err", err)
			report.Failed++
			continue
		}

		recognized := SanitizeSnippet(line, snippetLength)
		if snippetsMatch(sample.Snippet, recognized) {
			report.Matched++
		} else {
			logger.Debug("OCR mismatch", "path", sample.Path, "expected", sample.Snippet, "recognized", recognized)
			report.Mismatched++
		}
	}

	return utils.Map(utils.SortedKeys(reports), func(font string) AuditReport {
		return *reports[font]
	}), nil
}

// Either snippet may be the shorter one: names are truncated and OCR may stop early.
func snippetsMatch(expected string, recognized string) bool {
	expected = strings.ToLower(expected)
	recognized = strings.ToLower(recognized)
	if expected == "" || recognized == "" {
		return expected == recognized
	}
	return strings.HasPrefix(recognized, expected) || strings.HasPrefix(expected, recognized)
}
