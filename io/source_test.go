package io

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
)

const helloWorld = "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."

func gzipped(t *testing.T, text string) []byte {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(text))
	assert.NoError(t, err)
	assert.NoError(t, gz.Close())
	return buf.Bytes()
}

func zstded(t *testing.T, text string) []byte {
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	assert.NoError(t, err)
	_, err = zw.Write([]byte(text))
	assert.NoError(t, err)
	assert.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestLoader(t *testing.T) {
	assert := assert.New(t)

	fsys := fstest.MapFS{
		"hello.bf":      {Data: []byte(helloWorld)},
		"hello.bf.gz":   {Data: gzipped(t, helloWorld)},
		"hello.bf.zst":  {Data: zstded(t, helloWorld)},
		"dir/nested.bf": {Data: []byte("+.")},
	}

	ld := &Loader{FS: fsys, Stdin: strings.NewReader("from stdin")}

	table := [](struct {
		arg  string
		name string
		text string
	}){
		{"hello.bf", "hello.bf", helloWorld},
		{"hello.bf.gz", "hello.bf.gz", helloWorld},
		{"hello.bf.zst", "hello.bf.zst", helloWorld},
		{"dir/nested.bf", "dir/nested.bf", "+."},
		{"-", "-", "from stdin"},
		{"+++.", "", "+++."},
		{"dir", "", "dir"},
	}

	for _, entry := range table {
		src, err := ld.Load(entry.arg)
		assert.NoError(err, entry.arg)
		assert.Equal(entry.name, src.Name, entry.arg)
		assert.Equal(entry.text, src.Text, entry.arg)
		assert.Equal(entry.name == "", src.Inline(), entry.arg)
	}
}

func TestLoader_Empty(t *testing.T) {
	assert := assert.New(t)

	ld := &Loader{FS: fstest.MapFS{}}
	_, err := ld.Load("")
	assert.ErrorIs(err, ErrSourceEmpty)
}

func TestLoader_Corrupt(t *testing.T) {
	assert := assert.New(t)

	ld := &Loader{FS: fstest.MapFS{
		"bad.b.gz": {Data: []byte("not gzip data")},
	}}
	_, err := ld.Load("bad.b.gz")
	assert.Error(err)
}

func TestStripCompression(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("hello.bf", StripCompression("hello.bf.gz"))
	assert.Equal("hello.ook", StripCompression("hello.ook.zst"))
	assert.Equal("hello.sook", StripCompression("hello.sook"))
	assert.Equal("a/b.bf", StripCompression("a/b.bf.gz"))
}
