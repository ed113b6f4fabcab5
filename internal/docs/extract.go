package docs

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/firefly-engineering/skillify/internal/config"
	"github.com/firefly-engineering/skillify/internal/evidence"
	"github.com/firefly-engineering/skillify/internal/logging"
)

// DocumentationUnit is one normalized reference document.
type DocumentationUnit struct {
	// SourcePath is the origin path relative to the repository root.
	SourcePath string

	// CanonicalName is the destination file name, unique within a bundle.
	CanonicalName string

	// Content is the normalized, possibly truncated document body.
	Content []byte
}

// SkippedDoc records a candidate that was not extracted.
type SkippedDoc struct {
	Path   string
	Reason string
}

// Report describes non-fatal extraction outcomes.
type Report struct {
	Skipped []SkippedDoc
}

// binarySniffLen is the window scanned for NUL bytes when deciding whether
// a candidate is binary.
const binarySniffLen = 8 * 1024

// Extract reads each ranked candidate, normalizes its content and assigns a
// unique canonical name. Unreadable or binary-looking candidates are
// recorded and skipped, never fatal. An empty result is a valid state.
// Rerunning on an unchanged snapshot yields byte-identical units.
func Extract(snap *evidence.RepositorySnapshot, ev *evidence.Evidence, opts config.Options) ([]DocumentationUnit, Report) {
	var units []DocumentationUnit
	var report Report
	nameCount := make(map[string]int)

	for _, cand := range ev.DocCandidates {
		data, err := snap.ReadFile(cand.Path, opts.MaxDocumentBytes)
		if err != nil {
			logging.Debug("skipping unreadable documentation candidate", "path", cand.Path, "error", err)
			report.Skipped = append(report.Skipped, SkippedDoc{Path: cand.Path, Reason: "unreadable"})
			continue
		}
		if looksBinary(data) {
			logging.Debug("skipping binary documentation candidate", "path", cand.Path)
			report.Skipped = append(report.Skipped, SkippedDoc{Path: cand.Path, Reason: "binary"})
			continue
		}

		truncated := len(data) > opts.MaxDocumentBytes
		if truncated {
			data = cutValidUTF8(data, opts.MaxDocumentBytes)
		}

		content := normalize(data)
		if truncated {
			// Never drop content silently.
			content = append(content, []byte(config.TruncationMarker)...)
		}

		name := dedupeName(cand.Canonical, nameCount)
		units = append(units, DocumentationUnit{
			SourcePath:    cand.Path,
			CanonicalName: name,
			Content:       content,
		})
	}

	return units, report
}

// looksBinary reports whether data contains a NUL byte in the sniff window.
func looksBinary(data []byte) bool {
	window := data
	if len(window) > binarySniffLen {
		window = window[:binarySniffLen]
	}
	return bytes.IndexByte(window, 0) >= 0
}

// normalize converts CRLF to LF and strips C0 control characters unsafe
// for markdown, keeping newlines and tabs.
func normalize(data []byte) []byte {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	out := make([]byte, 0, len(data))
	for _, b := range data {
		if b < 0x20 && b != '\n' && b != '\t' {
			continue
		}
		if b == 0x7f {
			continue
		}
		out = append(out, b)
	}
	return out
}

// cutValidUTF8 cuts data at max bytes without leaving a partial rune at the
// end.
func cutValidUTF8(data []byte, max int) []byte {
	if len(data) <= max {
		return data
	}
	data = data[:max]
	for i := 0; i < utf8.UTFMax && len(data) > 0; i++ {
		r, size := utf8.DecodeLastRune(data)
		if r != utf8.RuneError || size > 1 {
			break
		}
		data = data[:len(data)-1]
	}
	return data
}

// dedupeName returns the canonical name for the next occurrence: the first
// keeps the bare name, the n-th collision gets a numeric suffix before the
// extension, in first-seen order.
func dedupeName(canonical string, seen map[string]int) string {
	seen[canonical]++
	n := seen[canonical]
	if n == 1 {
		return canonical
	}

	ext := ""
	base := canonical
	if idx := strings.LastIndex(canonical, "."); idx > 0 {
		base, ext = canonical[:idx], canonical[idx:]
	}
	return fmt.Sprintf("%s-%d%s", base, n, ext)
}
