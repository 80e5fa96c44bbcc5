package finderinfo

// LabelColor is the Finder label stored in the color bits of FinderFlags
type LabelColor uint8

// Label colors. NoColor is the absence of a label.
const (
	NoColor LabelColor = iota
	Gray
	Green
	Purple
	Blue
	Yellow
	Red
	Orange
)

var labelColorNames = map[LabelColor]string{
	Gray:   "Gray",
	Green:  "Green",
	Purple: "Purple",
	Blue:   "Blue",
	Yellow: "Yellow",
	Red:    "Red",
	Orange: "Orange",
}

// LabelColorFromBits maps the masked color bits of FinderFlags to a color.
// Zero and odd values are NoColor.
func LabelColorFromBits(b uint8) LabelColor {
	switch b {
	case 0x02:
		return Gray
	case 0x04:
		return Green
	case 0x06:
		return Purple
	case 0x08:
		return Blue
	case 0x0a:
		return Yellow
	case 0x0c:
		return Red
	case 0x0e:
		return Orange
	}
	return NoColor
}

// Bits is the inverse of LabelColorFromBits
func (c LabelColor) Bits() uint8 {
	switch c {
	case Gray:
		return 0x02
	case Green:
		return 0x04
	case Purple:
		return 0x06
	case Blue:
		return 0x08
	case Yellow:
		return 0x0a
	case Red:
		return 0x0c
	case Orange:
		return 0x0e
	}
	return 0
}

// String returns the color name, or "None"
func (c LabelColor) String() string {
	if name, ok := labelColorNames[c]; ok {
		return name
	}
	return "None"
}

// ParseLabelColor is an exact, case sensitive match on the color names
func ParseLabelColor(s string) (LabelColor, bool) {
	for c, name := range labelColorNames {
		if name == s {
			return c, true
		}
	}
	return NoColor, false
}

// FinderFlags of a file or folder
type FinderFlags uint16

// Color is the label color, NoColor when unset
func (f FinderFlags) Color() LabelColor {
	return LabelColorFromBits(uint8(uint16(f) & ColorMask))
}

// SetColor replaces the color bits and leaves the others alone
func (f *FinderFlags) SetColor(c LabelColor) {
	*f = FinderFlags(uint16(*f)&^ColorMask | uint16(c.Bits()))
}

func (f FinderFlags) IsShared() bool      { return uint16(f)&IsShared != 0 }
func (f FinderFlags) HasNoINITs() bool    { return uint16(f)&HasNoINITs != 0 }
func (f FinderFlags) HasBeenInited() bool { return uint16(f)&HasBeenInited != 0 }
func (f FinderFlags) HasCustomIcon() bool { return uint16(f)&HasCustomIcon != 0 }
func (f FinderFlags) IsStationery() bool  { return uint16(f)&IsStationery != 0 }
func (f FinderFlags) NameLocked() bool    { return uint16(f)&NameLocked != 0 }
func (f FinderFlags) HasBundle() bool     { return uint16(f)&HasBundle != 0 }
func (f FinderFlags) IsInvisible() bool   { return uint16(f)&IsInvisible != 0 }
func (f FinderFlags) IsAlias() bool       { return uint16(f)&IsAlias != 0 }

// SetHasCustomIcon sets or clears the custom icon bit
func (f *FinderFlags) SetHasCustomIcon(value bool) {
	if value {
		*f |= FinderFlags(HasCustomIcon)
	} else {
		*f &^= FinderFlags(HasCustomIcon)
	}
}

// Names lists the color and the set flags in mask order
func (f FinderFlags) Names() []string {
	names := make([]string, 0)
	if c := f.Color(); c != NoColor {
		names = append(names, c.String())
	}
	for _, flag := range []struct {
		set  bool
		name string
	}{
		{f.IsShared(), "kIsShared"},
		{f.HasNoINITs(), "kHasNoINITs"},
		{f.HasBeenInited(), "kHasBeenInited"},
		{f.HasCustomIcon(), "kHasCustomIcon"},
		{f.IsStationery(), "kIsStationery"},
		{f.NameLocked(), "kNameLocked"},
		{f.HasBundle(), "kHasBundle"},
		{f.IsInvisible(), "kIsInvisible"},
		{f.IsAlias(), "kIsAlias"},
	} {
		if flag.set {
			names = append(names, flag.name)
		}
	}
	return names
}

// ExtendedFinderFlags of a file or folder. Read only.
type ExtendedFinderFlags uint16

// AreInvalid reports that the other extended flags must be ignored
func (f ExtendedFinderFlags) AreInvalid() bool {
	return uint16(f)&ExtendedFlagsAreInvalid != 0
}

func (f ExtendedFinderFlags) HasCustomBadge() bool {
	return uint16(f)&ExtendedFlagHasCustomBadge != 0
}

func (f ExtendedFinderFlags) HasRoutingInfo() bool {
	return uint16(f)&ExtendedFlagHasRoutingInfo != 0
}

// Names lists the set extended flags in mask order
func (f ExtendedFinderFlags) Names() []string {
	names := make([]string, 0)
	if f.AreInvalid() {
		names = append(names, "kExtendedFlagsAreInvalid")
	}
	if f.HasCustomBadge() {
		names = append(names, "kExtendedFlagHasCustomBadge")
	}
	if f.HasRoutingInfo() {
		names = append(names, "kExtendedFlagHasRoutingInfo")
	}
	return names
}
