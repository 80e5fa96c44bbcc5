package finderinfo

import (
	"bytes"
	"encoding/binary"
	"io"
)

func writePoint(w io.Writer, p Point) error {
	if err := binary.Write(w, binary.BigEndian, p.V); err != nil {
		return err
	}
	return binary.Write(w, binary.BigEndian, p.H)
}

func writeRect(w io.Writer, rc Rect) error {
	// top, left, bottom, right
	for _, v := range []int16{rc.Top, rc.Left, rc.Bottom, rc.Right} {
		if err := binary.Write(w, binary.BigEndian, v); err != nil {
			return err
		}
	}
	return nil
}

// Write encodes a point
func (p Point) Write(w io.Writer) error {
	return writePoint(w, p)
}

// Write encodes a rectangle
func (rc Rect) Write(w io.Writer) error {
	return writeRect(w, rc)
}

// Write encodes FileInfo
func (fi *FileInfo) Write(w io.Writer) error {
	// type and creator
	if _, err := w.Write(fi.FileType[:]); err != nil {
		return err
	}
	if _, err := w.Write(fi.FileCreator[:]); err != nil {
		return err
	}
	// flags
	if err := binary.Write(w, binary.BigEndian, uint16(fi.FinderFlags)); err != nil {
		return err
	}
	// icon location
	if err := writePoint(w, fi.Location); err != nil {
		return err
	}
	// reserved
	return binary.Write(w, binary.BigEndian, fi.ReservedField)
}

// Write encodes ExtendedFileInfo
func (xi *ExtendedFileInfo) Write(w io.Writer) error {
	// reserved, 4 words
	if err := binary.Write(w, binary.BigEndian, xi.Reserved1[:]); err != nil {
		return err
	}
	// extended flags
	if err := binary.Write(w, binary.BigEndian, uint16(xi.ExtendedFinderFlags)); err != nil {
		return err
	}
	// reserved
	if err := binary.Write(w, binary.BigEndian, xi.Reserved2); err != nil {
		return err
	}
	// put away folder
	return binary.Write(w, binary.BigEndian, xi.PutAwayFolderID)
}

// Write encodes FolderInfo
func (fi *FolderInfo) Write(w io.Writer) error {
	// window bounds
	if err := writeRect(w, fi.WindowBounds); err != nil {
		return err
	}
	// flags
	if err := binary.Write(w, binary.BigEndian, uint16(fi.FinderFlags)); err != nil {
		return err
	}
	// location in the parent window
	if err := writePoint(w, fi.Location); err != nil {
		return err
	}
	// reserved
	return binary.Write(w, binary.BigEndian, fi.ReservedField)
}

// Write encodes ExtendedFolderInfo
func (xi *ExtendedFolderInfo) Write(w io.Writer) error {
	// scroll position
	if err := writePoint(w, xi.ScrollPosition); err != nil {
		return err
	}
	// reserved
	if err := binary.Write(w, binary.BigEndian, xi.Reserved1); err != nil {
		return err
	}
	// extended flags
	if err := binary.Write(w, binary.BigEndian, uint16(xi.ExtendedFinderFlags)); err != nil {
		return err
	}
	// reserved
	if err := binary.Write(w, binary.BigEndian, xi.Reserved2); err != nil {
		return err
	}
	// put away folder
	return binary.Write(w, binary.BigEndian, xi.PutAwayFolderID)
}

// Write encodes the file record
func (f *File) Write(w io.Writer) error {
	if err := f.FileInfo.Write(w); err != nil {
		return err
	}
	return f.ExtendedFileInfo.Write(w)
}

// Write encodes the folder record
func (f *Folder) Write(w io.Writer) error {
	if err := f.FolderInfo.Write(w); err != nil {
		return err
	}
	return f.ExtendedFolderInfo.Write(w)
}

// Bytes returns the 32 byte encoding of the file record
func (f *File) Bytes() []byte {
	b := bytes.NewBuffer(make([]byte, 0, Size))
	// bytes.Buffer never fails to write
	_ = f.Write(b)
	return b.Bytes()
}

// Bytes returns the 32 byte encoding of the folder record
func (f *Folder) Bytes() []byte {
	b := bytes.NewBuffer(make([]byte, 0, Size))
	_ = f.Write(b)
	return b.Bytes()
}
