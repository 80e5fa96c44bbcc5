package main

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gwend/finderinfo"
)

type memStore map[string][]byte

func (m memStore) Get(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, finderinfo.ErrNoAttr
	}
	return data, nil
}

func (m memStore) Set(path string, data []byte) error {
	m[path] = append([]byte(nil), data...)
	return nil
}

func run(t *testing.T, store finderinfo.Store, args ...string) (string, error) {
	t.Helper()
	out, logs := new(bytes.Buffer), new(bytes.Buffer)
	cmd := newRootCmd(store, out, logs)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func tempFile(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	return path
}

func TestParseHex(t *testing.T) {
	record := make([]byte, finderinfo.Size)
	record[9] = 0x0c
	out, err := run(t, memStore{}, "parse-hex", "-d", hex.EncodeToString(record))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "Folder{"))
	require.Contains(t, out, "[Red]")

	record[8] = 0x04
	out, err = run(t, memStore{}, "parse-hex", "-f", hex.EncodeToString(record))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "File{"))
	require.Contains(t, out, "[Red kHasCustomIcon]")
}

func TestParseHexErrors(t *testing.T) {
	_, err := run(t, memStore{}, "parse-hex", "-f", "zz")
	require.ErrorContains(t, err, "invalid hexadecimal string")
	_, err = run(t, memStore{}, "parse-hex", "-f", "0000")
	require.ErrorIs(t, err, finderinfo.ErrTruncated)
	_, err = run(t, memStore{}, "parse-hex", "00")
	require.Error(t, err)
	_, err = run(t, memStore{}, "parse-hex", "-d", "-f", "00")
	require.Error(t, err)
}

func TestWriteAndReadFileType(t *testing.T) {
	path := tempFile(t)
	store := memStore{}

	_, err := run(t, store, "write-filetype", path, "TEXT")
	require.NoError(t, err)
	require.Equal(t, []byte("TEXT"), store[path][:4])
	require.Len(t, store[path], finderinfo.Size)

	out, err := run(t, store, "read-filetype", path)
	require.NoError(t, err)
	require.Equal(t, "file type: \"TEXT\"\n", out)

	_, err = run(t, store, "write-filetype", path, "TOOLONG")
	require.Error(t, err)
	_, err = run(t, store, "write-filetype", t.TempDir(), "TEXT")
	require.ErrorIs(t, err, finderinfo.ErrNotFile)
}

func TestSetColorAndIcon(t *testing.T) {
	path := tempFile(t)
	store := memStore{}

	_, err := run(t, store, "set-color", path, "Blue")
	require.NoError(t, err)
	_, err = run(t, store, "set-custom-icon", path, "true")
	require.NoError(t, err)
	require.Equal(t, []byte{0x04, 0x08}, store[path][8:10])

	out, err := run(t, store, "read", "--hex", path)
	require.NoError(t, err)
	require.Equal(t, "00000000000000000408"+strings.Repeat("00", 22)+"\n", out)

	_, err = run(t, store, "set-color", path, "None")
	require.NoError(t, err)
	require.Equal(t, []byte{0x04, 0x00}, store[path][8:10])

	_, err = run(t, store, "set-color", path, "blue")
	require.ErrorContains(t, err, "unknown label color")
	_, err = run(t, store, "set-custom-icon", path, "maybe")
	require.Error(t, err)
}

func TestReadMissing(t *testing.T) {
	_, err := run(t, memStore{}, "read", tempFile(t))
	require.ErrorIs(t, err, finderinfo.ErrNoAttr)
}
