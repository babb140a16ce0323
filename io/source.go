package io

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression suffixes recognized by the Loader.
const (
	SUFFIX_GZIP = ".gz"
	SUFFIX_ZSTD = ".zst"
)

// Source is program text and where it was read from.
type Source struct {
	Name string // File name, "-" for stdin, or "" for inline text.
	Text string
}

// Inline returns true if the source text was given directly.
func (src Source) Inline() bool {
	return src.Name == ""
}

// Loader resolves a program argument into a Source.
//
// The argument "-" reads Stdin. An argument naming an existing file reads
// that file, decompressing ".gz" and ".zst" files. Any other argument is
// taken to be the program text itself.
type Loader struct {
	FS    fs.FS     // File system to read from; nil reads the host file system.
	Stdin io.Reader // Reader for "-"; nil reads os.Stdin.
}

// Load resolves arg into program source text.
func (ld *Loader) Load(arg string) (src Source, err error) {
	if arg == "" {
		err = ErrSourceEmpty
		return
	}

	if arg == "-" {
		stdin := ld.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		var data []byte
		data, err = io.ReadAll(stdin)
		if err != nil {
			return
		}
		src = Source{Name: arg, Text: string(data)}
		return
	}

	if !ld.exists(arg) {
		src = Source{Text: arg}
		return
	}

	rc, err := ld.Open(arg)
	if err != nil {
		return
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return
	}

	src = Source{Name: arg, Text: string(data)}
	return
}

func (ld *Loader) exists(name string) bool {
	var info fs.FileInfo
	var err error
	if ld.FS != nil {
		info, err = fs.Stat(ld.FS, name)
	} else {
		info, err = os.Stat(name)
	}
	return err == nil && !info.IsDir()
}

// Open opens a file, decompressing it according to its suffix.
func (ld *Loader) Open(name string) (rc io.ReadCloser, err error) {
	var file io.ReadCloser
	if ld.FS != nil {
		file, err = ld.FS.Open(name)
	} else {
		file, err = os.Open(name)
	}
	if err != nil {
		return
	}

	rc, err = Decompress(name, file)
	if err != nil {
		file.Close()
		return
	}

	return
}

// StripCompression removes a recognized compression suffix from a file name.
func StripCompression(name string) string {
	switch path.Ext(name) {
	case SUFFIX_GZIP, SUFFIX_ZSTD:
		return strings.TrimSuffix(name, path.Ext(name))
	}
	return name
}

// decompressor closes both the decoder and the underlying file.
type decompressor struct {
	io.Reader
	closers []io.Closer
}

func (dc *decompressor) Close() (err error) {
	for _, c := range dc.closers {
		err = errors.Join(err, c.Close())
	}
	return
}

// Decompress wraps file in a decoder selected by the suffix of name.
// Files without a compression suffix are returned unchanged.
func Decompress(name string, file io.ReadCloser) (rc io.ReadCloser, err error) {
	switch path.Ext(name) {
	case SUFFIX_GZIP:
		var gz *gzip.Reader
		gz, err = gzip.NewReader(file)
		if err != nil {
			return
		}
		rc = &decompressor{Reader: gz, closers: []io.Closer{gz, file}}
	case SUFFIX_ZSTD:
		var zr *zstd.Decoder
		zr, err = zstd.NewReader(file)
		if err != nil {
			return
		}
		rc = &decompressor{Reader: zr, closers: []io.Closer{zr.IOReadCloser(), file}}
	default:
		rc = file
	}

	return
}

// ReadSource resolves arg using the host file system and os.Stdin.
func ReadSource(arg string) (src Source, err error) {
	ld := &Loader{}
	return ld.Load(arg)
}
