package finderinfo

import (
	"fmt"
	"strings"
)

// fields renders name: value pairs in the given order
type fields []string

func (fs *fields) add(name string, value interface{}) {
	*fs = append(*fs, fmt.Sprintf("%s: %v", name, value))
}

func (fs fields) render(typeName string) string {
	return typeName + "{" + strings.Join(fs, ", ") + "}"
}

func (p Point) String() string {
	return fmt.Sprintf("Point{v: %d, h: %d}", p.V, p.H)
}

func (rc Rect) String() string {
	return fmt.Sprintf("Rect{top: %d, left: %d, bottom: %d, right: %d}", rc.Top, rc.Left, rc.Bottom, rc.Right)
}

func (f FinderFlags) String() string {
	return fmt.Sprintf("FinderFlags{raw: 0x%04x, flags: [%s]}", uint16(f), strings.Join(f.Names(), " "))
}

func (f ExtendedFinderFlags) String() string {
	return fmt.Sprintf("ExtendedFinderFlags{raw: 0x%04x, flags: [%s]}", uint16(f), strings.Join(f.Names(), " "))
}

func (fi FileInfo) String() string {
	var fs fields
	fs.add("fileType", fi.FileType)
	fs.add("fileCreator", fi.FileCreator)
	fs.add("finderFlags", fi.FinderFlags)
	fs.add("location", fi.Location)
	fs.add("reservedField", fi.ReservedField)
	return fs.render("FileInfo")
}

// String leaves out the reserved fields while they are zero
func (xi ExtendedFileInfo) String() string {
	var fs fields
	reserved := xi.Reserved1 != [4]int16{} || xi.Reserved2 != 0
	if reserved {
		fs.add("reserved1", xi.Reserved1)
	}
	fs.add("extendedFinderFlags", xi.ExtendedFinderFlags)
	if reserved {
		fs.add("reserved2", xi.Reserved2)
	}
	fs.add("putAwayFolderID", xi.PutAwayFolderID)
	return fs.render("ExtendedFileInfo")
}

func (f File) String() string {
	var fs fields
	fs.add("fileInfo", f.FileInfo)
	fs.add("extendedFileInfo", f.ExtendedFileInfo)
	return fs.render("File")
}

// String leaves out the reserved field while it is zero
func (fi FolderInfo) String() string {
	var fs fields
	fs.add("windowBounds", fi.WindowBounds)
	fs.add("finderFlags", fi.FinderFlags)
	fs.add("location", fi.Location)
	if fi.ReservedField != 0 {
		fs.add("reservedField", fi.ReservedField)
	}
	return fs.render("FolderInfo")
}

// String leaves out the reserved fields while they are zero
func (xi ExtendedFolderInfo) String() string {
	var fs fields
	reserved := xi.Reserved1 != 0 || xi.Reserved2 != 0
	fs.add("scrollPosition", xi.ScrollPosition)
	if reserved {
		fs.add("reserved1", xi.Reserved1)
	}
	fs.add("extendedFinderFlags", xi.ExtendedFinderFlags)
	if reserved {
		fs.add("reserved2", xi.Reserved2)
	}
	fs.add("putAwayFolderID", xi.PutAwayFolderID)
	return fs.render("ExtendedFolderInfo")
}

func (f Folder) String() string {
	var fs fields
	fs.add("folderInfo", f.FolderInfo)
	fs.add("extendedFolderInfo", f.ExtendedFolderInfo)
	return fs.render("Folder")
}
