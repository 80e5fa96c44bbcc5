package finderinfo

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pkg/xattr"
)

// AttrName is the extended attribute holding the record
const AttrName = "com.apple.FinderInfo"

var (
	// ErrNoAttr is returned when a path carries no FinderInfo attribute
	ErrNoAttr = errors.New("no FinderInfo attribute")
	// ErrAttrSize is returned when the stored attribute is not 32 bytes
	ErrAttrSize = errors.New("invalid FinderInfo attribute size")
	// ErrNotFile is returned when a file record is requested for a directory
	ErrNotFile = errors.New("not a regular file")
)

// Info is a *File or a *Folder
type Info interface {
	Read(r io.Reader) error
	Write(w io.Writer) error
	Bytes() []byte
	Flags() *FinderFlags
	IsDir() bool
	String() string
}

// Store keeps raw records per path
type Store interface {
	Get(path string) ([]byte, error)
	Set(path string, data []byte) error
}

// XattrStore keeps records in the com.apple.FinderInfo extended attribute
type XattrStore struct {
	// NoFollow operates on symlinks instead of their targets
	NoFollow bool
}

// Get reads the raw attribute. A missing attribute is ErrNoAttr.
func (s XattrStore) Get(path string) ([]byte, error) {
	get := xattr.Get
	if s.NoFollow {
		get = xattr.LGet
	}
	data, err := get(path, AttrName)
	if err != nil {
		if errors.Is(err, xattr.ENOATTR) {
			return nil, fmt.Errorf("%s: %w", path, ErrNoAttr)
		}
		return nil, err
	}
	return data, nil
}

// Set replaces the raw attribute
func (s XattrStore) Set(path string, data []byte) error {
	if s.NoFollow {
		return xattr.LSet(path, AttrName, data)
	}
	return xattr.Set(path, AttrName, data)
}

// ReadPath loads the record of path, as a Folder for directories and a File
// otherwise
func ReadPath(s Store, path string) (Info, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	data, err := s.Get(path)
	if err != nil {
		return nil, err
	}
	if len(data) != Size {
		return nil, fmt.Errorf("%s: %w: %d bytes", path, ErrAttrSize, len(data))
	}
	return Parse(data, st.IsDir())
}

// ReadPathOrZero is ReadPath, except that a path without the attribute gets
// a zero record of the right kind
func ReadPathOrZero(s Store, path string) (Info, error) {
	info, err := ReadPath(s, path)
	if !errors.Is(err, ErrNoAttr) {
		return info, err
	}
	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if st.IsDir() {
		return new(Folder), nil
	}
	return new(File), nil
}

// ReadFileInfo loads the record of a regular file, or a zero record when it
// has none
func ReadFileInfo(s Store, path string) (*File, error) {
	info, err := ReadPathOrZero(s, path)
	if err != nil {
		return nil, err
	}
	f, ok := info.(*File)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFile)
	}
	return f, nil
}

// WritePath stores info as the record of path
func WritePath(s Store, path string, info Info) error {
	b := new(bytes.Buffer)
	if err := info.Write(b); err != nil {
		return err
	}
	return s.Set(path, b.Bytes())
}
