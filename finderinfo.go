package finderinfo

// Size of one com.apple.FinderInfo record
const Size = 32

// size of every info and extended info half
const infoSize = 16

// Finder flags
const (
	IsOnDesk      uint16 = 0x0001 // unused and reserved
	ColorMask     uint16 = 0x000e // three bits of label color
	IsShared      uint16 = 0x0040 // multi-user application
	HasNoINITs    uint16 = 0x0080 // file contains no INIT resources
	HasBeenInited uint16 = 0x0100 // bundle recorded in the desktop database
	HasCustomIcon uint16 = 0x0400 // custom icon
	IsStationery  uint16 = 0x0800 // stationery pad
	NameLocked    uint16 = 0x1000 // can't be renamed from the Finder
	HasBundle     uint16 = 0x2000 // bundle resource, or package for directories
	IsInvisible   uint16 = 0x4000 // hidden from the Finder
	IsAlias       uint16 = 0x8000 // alias file
)

// Extended Finder flags
const (
	ExtendedFlagsAreInvalid    uint16 = 0x8000 // if set the other extended flags are ignored
	ExtendedFlagHasCustomBadge uint16 = 0x0100 // badge resource
	ExtendedFlagHasRoutingInfo uint16 = 0x0004 // routing info resource
)

// Well-known type codes
var (
	SymLinkFileType = OSType{'s', 'l', 'n', 'k'}
	SymLinkCreator  = OSType{'r', 'h', 'a', 'p'}
)

// Point in local window coordinates. The vertical coordinate comes first.
type Point struct {
	V int16
	H int16
}

// Rect in local window coordinates
type Rect struct {
	Top    int16
	Left   int16
	Bottom int16
	Right  int16
}

// FileInfo is the first half of a file record
type FileInfo struct {
	FileType      OSType      // file type
	FileCreator   OSType      // signature of the creating application
	FinderFlags   FinderFlags // finder flags
	Location      Point       // icon location within its window
	ReservedField uint16      // window of the icon, meaningful only to the Finder
}

// ExtendedFileInfo is the second half of a file record
type ExtendedFileInfo struct {
	Reserved1           [4]int16            // reserved
	ExtendedFinderFlags ExtendedFinderFlags // extended flags
	Reserved2           int16               // reserved
	PutAwayFolderID     int32               // folder the file was moved to the desktop from
}

// File is the FinderInfo record of a regular file
type File struct {
	FileInfo         FileInfo
	ExtendedFileInfo ExtendedFileInfo
}

// FolderInfo is the first half of a folder record
type FolderInfo struct {
	WindowBounds  Rect        // window rectangle when the folder is opened
	FinderFlags   FinderFlags // finder flags
	Location      Point       // location in the parent window
	ReservedField uint16      // reserved
}

// ExtendedFolderInfo is the second half of a folder record
type ExtendedFolderInfo struct {
	ScrollPosition      Point               // scroll position within the window
	Reserved1           int32               // reserved
	ExtendedFinderFlags ExtendedFinderFlags // extended flags
	Reserved2           int16               // reserved
	PutAwayFolderID     int32               // folder the folder was moved to the desktop from
}

// Folder is the FinderInfo record of a directory
type Folder struct {
	FolderInfo         FolderInfo
	ExtendedFolderInfo ExtendedFolderInfo
}

// Flags returns the finder flags of the file for in-place updates
func (f *File) Flags() *FinderFlags {
	return &f.FileInfo.FinderFlags
}

// IsDir is false for files
func (f *File) IsDir() bool {
	return false
}

// Flags returns the finder flags of the folder for in-place updates
func (f *Folder) Flags() *FinderFlags {
	return &f.FolderInfo.FinderFlags
}

// IsDir is true for folders
func (f *Folder) IsDir() bool {
	return true
}
