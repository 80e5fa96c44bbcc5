package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gwend/finderinfo"
)

func (a *app) readCmd() *cobra.Command {
	var dumpHex bool
	cmd := &cobra.Command{
		Use:   "read <path>",
		Short: "Print the FinderInfo record of a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.Info("reading FinderInfo", "path", args[0])
			info, err := finderinfo.ReadPath(a.store, args[0])
			if err != nil {
				return err
			}
			if dumpHex {
				fmt.Fprintln(a.out, hex.EncodeToString(info.Bytes()))
				return nil
			}
			fmt.Fprintln(a.out, info)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dumpHex, "hex", false, "print the raw record as hex")
	return cmd
}

func (a *app) parseHexCmd() *cobra.Command {
	var dir, file bool
	cmd := &cobra.Command{
		Use:   "parse-hex (-d | -f) <hex-data>",
		Short: "Decode a hex encoded record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("invalid hexadecimal string: %w", err)
			}
			a.log.Debug("decoding record", "bytes", len(data), "dir", dir)
			info, err := finderinfo.Parse(data, dir)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, info)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&dir, "dir", "d", false, "read as a directory record")
	cmd.Flags().BoolVarP(&file, "file", "f", false, "read as a file record")
	cmd.MarkFlagsMutuallyExclusive("dir", "file")
	cmd.MarkFlagsOneRequired("dir", "file")
	return cmd
}

func (a *app) readFileTypeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read-filetype <path>",
		Short: "Print the file type code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.Info("reading FinderInfo", "path", args[0])
			info, err := finderinfo.ReadPath(a.store, args[0])
			if err != nil {
				return err
			}
			f, ok := info.(*finderinfo.File)
			if !ok {
				return fmt.Errorf("%s: %w", args[0], finderinfo.ErrNotFile)
			}
			fmt.Fprintf(a.out, "file type: %v\n", f.FileInfo.FileType)
			return nil
		},
	}
}

func (a *app) writeFileTypeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "write-filetype <path> <value>",
		Short: "Replace the file type code",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			fileType, err := finderinfo.ParseOSType(args[1])
			if err != nil {
				return err
			}
			a.log.Info("reading FinderInfo", "path", path)
			f, err := finderinfo.ReadFileInfo(a.store, path)
			if err != nil {
				return err
			}
			a.log.Info("replacing file type", "old", f.FileInfo.FileType.String(), "new", fileType.String())
			f.FileInfo.FileType = fileType
			if err := finderinfo.WritePath(a.store, path, f); err != nil {
				return err
			}
			a.log.Info("wrote FinderInfo", "path", path)
			return nil
		},
	}
}

// update applies fn to the record of path and stores it back
func (a *app) update(path string, fn func(*finderinfo.FinderFlags)) error {
	a.log.Info("reading FinderInfo", "path", path)
	info, err := finderinfo.ReadPathOrZero(a.store, path)
	if err != nil {
		return err
	}
	before := *info.Flags()
	fn(info.Flags())
	a.log.Debug("finder flags", "before", before.String(), "after", info.Flags().String())
	if err := finderinfo.WritePath(a.store, path, info); err != nil {
		return err
	}
	a.log.Info("wrote FinderInfo", "path", path)
	return nil
}

func (a *app) setColorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-color <path> <color>",
		Short: "Set the label color (Gray, Green, Purple, Blue, Yellow, Red, Orange or None)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			color := finderinfo.NoColor
			if args[1] != "None" {
				var ok bool
				if color, ok = finderinfo.ParseLabelColor(args[1]); !ok {
					return fmt.Errorf("unknown label color %q", args[1])
				}
			}
			return a.update(args[0], func(f *finderinfo.FinderFlags) {
				f.SetColor(color)
			})
		},
	}
}

func (a *app) setCustomIconCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-custom-icon <path> <true|false>",
		Short: "Set or clear the custom icon flag",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseBool(args[1])
			if err != nil {
				return err
			}
			return a.update(args[0], func(f *finderinfo.FinderFlags) {
				f.SetHasCustomIcon(value)
			})
		},
	}
}
