package finderinfo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type memStore map[string][]byte

func (m memStore) Get(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, ErrNoAttr
	}
	return data, nil
}

func (m memStore) Set(path string, data []byte) error {
	m[path] = append([]byte(nil), data...)
	return nil
}

func testPaths(t *testing.T) (file, dir string) {
	dir = t.TempDir()
	file = filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("data"), 0o600))
	return file, dir
}

func TestReadPathKind(t *testing.T) {
	file, dir := testPaths(t)
	store := memStore{file: redIconRecord[:], dir: redRecord[:]}

	info, err := ReadPath(store, file)
	require.NoError(t, err)
	require.False(t, info.IsDir())
	require.IsType(t, &File{}, info)
	require.True(t, info.Flags().HasCustomIcon())

	info, err = ReadPath(store, dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
	require.IsType(t, &Folder{}, info)
	require.Equal(t, Red, info.Flags().Color())
}

func TestReadPathErrors(t *testing.T) {
	file, dir := testPaths(t)
	store := memStore{file: redRecord[:10]}

	_, err := ReadPath(store, file)
	require.ErrorIs(t, err, ErrAttrSize)
	_, err = ReadPath(store, dir)
	require.ErrorIs(t, err, ErrNoAttr)
	_, err = ReadPath(store, filepath.Join(dir, "missing"))
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadPathOrZero(t *testing.T) {
	file, dir := testPaths(t)
	store := memStore{}

	info, err := ReadPathOrZero(store, file)
	require.NoError(t, err)
	require.Equal(t, &File{}, info)
	info, err = ReadPathOrZero(store, dir)
	require.NoError(t, err)
	require.Equal(t, &Folder{}, info)

	_, err = ReadFileInfo(store, dir)
	require.ErrorIs(t, err, ErrNotFile)
	store[dir] = redRecord[:]
	_, err = ReadFileInfo(store, dir)
	require.ErrorIs(t, err, ErrNotFile)
}

func TestWritePath(t *testing.T) {
	file, _ := testPaths(t)
	store := memStore{}

	f, err := ReadFileInfo(store, file)
	require.NoError(t, err)
	f.Flags().SetColor(Blue)
	f.Flags().SetHasCustomIcon(true)
	require.NoError(t, WritePath(store, file, f))
	require.Equal(t, blueIconRecord[:], store[file])

	info, err := ReadPath(store, file)
	require.NoError(t, err)
	require.Equal(t, f, info)
}

func TestXattrStore(t *testing.T) {
	file, _ := testPaths(t)
	store := XattrStore{}

	f := &File{FileInfo: FileInfo{FileType: SymLinkFileType, FileCreator: SymLinkCreator}}
	if err := WritePath(store, file, f); err != nil {
		t.Skipf("%s not supported here: %s", AttrName, err)
	}
	info, err := ReadPath(store, file)
	require.NoError(t, err)
	require.Equal(t, f, info)
}
