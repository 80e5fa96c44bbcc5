package finderinfo

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrTruncated is returned when the input ends before a record is complete
var ErrTruncated = errors.New("truncated input")

func readValue(r io.Reader, field string, v interface{}) error {
	err := binary.Read(r, binary.BigEndian, v)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s", ErrTruncated, field)
	}
	return err
}

func readOSType(r io.Reader, field string) (OSType, error) {
	var t OSType
	if _, err := io.ReadFull(r, t[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return t, fmt.Errorf("%w: %s", ErrTruncated, field)
		}
		return t, err
	}
	return t, nil
}

func readPoint(r io.Reader, field string) (Point, error) {
	var p Point
	if err := readValue(r, field+".v", &p.V); err != nil {
		return p, err
	}
	if err := readValue(r, field+".h", &p.H); err != nil {
		return p, err
	}
	return p, nil
}

func readRect(r io.Reader, field string) (Rect, error) {
	var rc Rect
	// top, left, bottom, right
	if err := readValue(r, field+".top", &rc.Top); err != nil {
		return rc, err
	}
	if err := readValue(r, field+".left", &rc.Left); err != nil {
		return rc, err
	}
	if err := readValue(r, field+".bottom", &rc.Bottom); err != nil {
		return rc, err
	}
	if err := readValue(r, field+".right", &rc.Right); err != nil {
		return rc, err
	}
	return rc, nil
}

// Read decodes a point
func (p *Point) Read(r io.Reader) error {
	v, err := readPoint(r, "point")
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Read decodes a rectangle
func (rc *Rect) Read(r io.Reader) error {
	v, err := readRect(r, "rect")
	if err != nil {
		return err
	}
	*rc = v
	return nil
}

// Read decodes FileInfo. fi is unchanged on error.
func (fi *FileInfo) Read(r io.Reader) error {
	var v FileInfo
	var err error
	// type and creator
	if v.FileType, err = readOSType(r, "fileType"); err != nil {
		return err
	}
	if v.FileCreator, err = readOSType(r, "fileCreator"); err != nil {
		return err
	}
	// flags
	if err = readValue(r, "finderFlags", &v.FinderFlags); err != nil {
		return err
	}
	// icon location
	if v.Location, err = readPoint(r, "location"); err != nil {
		return err
	}
	// reserved
	if err = readValue(r, "reservedField", &v.ReservedField); err != nil {
		return err
	}
	*fi = v
	return nil
}

// Read decodes ExtendedFileInfo. xi is unchanged on error.
func (xi *ExtendedFileInfo) Read(r io.Reader) error {
	var v ExtendedFileInfo
	// reserved, 4 words
	for i := range v.Reserved1 {
		if err := readValue(r, fmt.Sprintf("reserved1[%d]", i), &v.Reserved1[i]); err != nil {
			return err
		}
	}
	// extended flags
	if err := readValue(r, "extendedFinderFlags", &v.ExtendedFinderFlags); err != nil {
		return err
	}
	// reserved
	if err := readValue(r, "reserved2", &v.Reserved2); err != nil {
		return err
	}
	// put away folder
	if err := readValue(r, "putAwayFolderID", &v.PutAwayFolderID); err != nil {
		return err
	}
	*xi = v
	return nil
}

// Read decodes FolderInfo. fi is unchanged on error.
func (fi *FolderInfo) Read(r io.Reader) error {
	var v FolderInfo
	var err error
	// window bounds
	if v.WindowBounds, err = readRect(r, "windowBounds"); err != nil {
		return err
	}
	// flags
	if err = readValue(r, "finderFlags", &v.FinderFlags); err != nil {
		return err
	}
	// location in the parent window
	if v.Location, err = readPoint(r, "location"); err != nil {
		return err
	}
	// reserved
	if err = readValue(r, "reservedField", &v.ReservedField); err != nil {
		return err
	}
	*fi = v
	return nil
}

// Read decodes ExtendedFolderInfo. xi is unchanged on error.
func (xi *ExtendedFolderInfo) Read(r io.Reader) error {
	var v ExtendedFolderInfo
	var err error
	// scroll position
	if v.ScrollPosition, err = readPoint(r, "scrollPosition"); err != nil {
		return err
	}
	// reserved
	if err = readValue(r, "reserved1", &v.Reserved1); err != nil {
		return err
	}
	// extended flags
	if err = readValue(r, "extendedFinderFlags", &v.ExtendedFinderFlags); err != nil {
		return err
	}
	// reserved
	if err = readValue(r, "reserved2", &v.Reserved2); err != nil {
		return err
	}
	// put away folder
	if err = readValue(r, "putAwayFolderID", &v.PutAwayFolderID); err != nil {
		return err
	}
	*xi = v
	return nil
}

// Read decodes a file record. f is unchanged on error.
func (f *File) Read(r io.Reader) error {
	var v File
	if err := v.FileInfo.Read(r); err != nil {
		return err
	}
	if err := v.ExtendedFileInfo.Read(r); err != nil {
		return err
	}
	*f = v
	return nil
}

// Read decodes a folder record. f is unchanged on error.
func (f *Folder) Read(r io.Reader) error {
	var v Folder
	if err := v.FolderInfo.Read(r); err != nil {
		return err
	}
	if err := v.ExtendedFolderInfo.Read(r); err != nil {
		return err
	}
	*f = v
	return nil
}

// ParseFile decodes the first 32 bytes of data as a file record
func ParseFile(data []byte) (*File, error) {
	f := new(File)
	if err := f.Read(bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return f, nil
}

// ParseFolder decodes the first 32 bytes of data as a folder record
func ParseFolder(data []byte) (*Folder, error) {
	f := new(Folder)
	if err := f.Read(bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return f, nil
}

// Parse decodes data as a folder record if dir is set, as a file record otherwise
func Parse(data []byte, dir bool) (Info, error) {
	var info Info = new(File)
	if dir {
		info = new(Folder)
	}
	if err := info.Read(bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return info, nil
}
