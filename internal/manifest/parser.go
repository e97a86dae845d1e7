package manifest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/handiism/modrinth-downloader/internal/model"
)

// DirMarker starts a line that sets the sub-directory for following entries.
const DirMarker = "---dir:"

// ErrNotFound is returned by ParseFile when the manifest does not exist.
var ErrNotFound = errors.New("manifest not found")

// Warning describes a manifest line that was ignored.
type Warning struct {
	Line    int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Message)
}

// Parse reads a manifest and returns its entries in file order.
//
// The format is line based:
//   - blank lines and lines starting with "#" are ignored
//   - "[plugins]", "[datapacks]", "[mods]" (singular or plural, any case)
//     open a category section and clear the sub-directory
//   - an unknown "[header]" clears the current section and produces a Warning
//   - "---dir:<path>" sets the sub-directory for the following entries
//   - any other line is a project query for the current section; lines
//     outside a known section are dropped with a Warning
//
// A leading UTF-8 byte order mark is skipped and queries are NFC-normalized.
func Parse(r io.Reader) ([]model.RequestItem, []Warning, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	scanner := bufio.NewScanner(decoded)

	var (
		items    []model.RequestItem
		warnings []Warning
		current  model.Category
		active   bool
		subDir   string
		lineNo   int
	)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			current, active = model.CategoryFromHeader(line)
			subDir = ""
			if !active {
				warnings = append(warnings, Warning{Line: lineNo, Message: "unknown section " + line})
			}
			continue
		}

		if strings.HasPrefix(line, DirMarker) {
			subDir = strings.TrimSpace(strings.TrimPrefix(line, DirMarker))
			continue
		}

		if !active {
			warnings = append(warnings, Warning{Line: lineNo, Message: "entry outside a known section: " + line})
			continue
		}

		items = append(items, model.RequestItem{
			Query:    norm.NFC.String(line),
			Category: current,
			SubDir:   subDir,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, warnings, fmt.Errorf("read manifest: %w", err)
	}

	return items, warnings, nil
}

// ParseFile opens path and parses it with Parse. A missing file is reported
// as ErrNotFound.
func ParseFile(path string) ([]model.RequestItem, []Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	return Parse(f)
}
