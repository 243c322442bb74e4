package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
)

// FileSet owns every source text seen during a run and maps spans back to lines.
type FileSet struct {
	files   []File
	index   map[string]FileID // path -> latest id
	baseDir string
}

// NewFileSet creates an empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]File, 0),
		index: make(map[string]FileID),
	}
}

// SetBaseDir sets the directory used by FormatPath("relative", "").
func (set *FileSet) SetBaseDir(dir string) {
	set.baseDir = dir
}

// BaseDir returns the configured base directory or the working directory.
func (set *FileSet) BaseDir() string {
	if set.baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return set.baseDir
}

// Len reports how many files have been added.
func (set *FileSet) Len() int {
	return len(set.files)
}

// Add stores already-normalized bytes and returns a fresh FileID.
// A path added twice gets two ids; lookups by path return the latest.
func (set *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	normalizedPath := normalizePath(path)

	n, err := safecast.Conv[uint32](len(set.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	id := FileID(n)
	set.files = append(set.files, File{
		ID:      id,
		Path:    normalizedPath,
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	})
	set.index[normalizedPath] = id
	return id
}

// AddSource normalizes raw bytes with enc and adds them.
func (set *FileSet) AddSource(name string, raw []byte, enc Encoding, virtual bool) (FileID, error) {
	content, flags, err := Normalize(raw, enc)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if virtual {
		flags |= FileVirtual
	}
	return set.Add(name, content, flags), nil
}

// AddVirtual adds in-memory text (stdin, a boundary call, a test) as UTF-8.
func (set *FileSet) AddVirtual(name string, content []byte) FileID {
	id, err := set.AddSource(name, content, EncodingUTF8, true)
	if err != nil {
		// utf-8 normalization never transcodes and cannot fail
		panic(err)
	}
	return id
}

// Load reads a file from disk and adds it with the given encoding.
func (set *FileSet) Load(path string, enc Encoding) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return set.AddSource(path, content, enc, false)
}

// Get returns the file for id.
func (set *FileSet) Get(id FileID) *File {
	return &set.files[id]
}

// GetLatest returns the most recent id for path.
func (set *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := set.index[normalizePath(path)]
	return id, ok
}

// Resolve converts a span into 1-based line/column pairs.
func (set *FileSet) Resolve(span Span) (start, end LineCol) {
	f := &set.files[span.File]
	return f.Position(span.Start), f.Position(span.End)
}

// Position converts a byte offset into a 1-based line and byte column.
func (f *File) Position(off uint32) LineCol {
	return toLineCol(f.LineIdx, off)
}

// Text returns the source bytes covered by span as a string.
func (f *File) Text(span Span) string {
	n := uint32(len(f.Content)) // #nosec G115 -- content length bounded by Add
	start, end := min(span.Start, n), min(span.End, n)
	if start >= end {
		return ""
	}
	return string(f.Content[start:end])
}

// GetLine returns the 1-based line lineNum without its newline, or "" when out of range.
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}

	lenLineIdx, err := safecast.Conv[uint32](len(f.LineIdx))
	if err != nil {
		panic(fmt.Errorf("line index length overflow: %w", err))
	}
	lenContent, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}

	var start, end uint32
	switch {
	case lineNum == 1:
		start = 0
	case lineNum-2 < lenLineIdx:
		start = f.LineIdx[lineNum-2] + 1
	default:
		return ""
	}

	if lineNum-1 < lenLineIdx {
		end = f.LineIdx[lineNum-1]
	} else {
		end = lenContent
	}

	if start > lenContent || start > end {
		return ""
	}
	return string(f.Content[start:end])
}

// FormatPath renders the path for display. mode is "absolute", "relative"
// (to baseDir, or the working directory when empty), "basename" or "auto";
// auto keeps short or relative paths and shortens long absolute ones to
// their base name. Virtual files always show their given name.
func (f *File) FormatPath(mode, baseDir string) string {
	if f.Flags&FileVirtual != 0 {
		return f.Path
	}
	var (
		out string
		err error
	)
	switch mode {
	case "absolute":
		out, err = AbsolutePath(f.Path)
	case "relative":
		if baseDir == "" {
			baseDir, _ = os.Getwd()
		}
		out, err = RelativePath(f.Path, baseDir)
	case "basename":
		out = BaseName(f.Path)
	case "auto":
		out = f.Path
		if len(f.Path) >= 40 && filepath.IsAbs(f.Path) {
			out = BaseName(f.Path)
		}
	default:
		out = f.Path
	}
	if err != nil {
		return f.Path
	}
	return out
}
