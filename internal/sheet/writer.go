package sheet

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mgpai22/srt2xlsx/internal/subtitle"
	"github.com/xuri/excelize/v2"
)

const DefaultSheet = "Sheet1"

// column header, in output order
var Header = []interface{}{"Number", "Begin", "End", "Text"}

var ErrWrite = errors.New("failed to write spreadsheet")

type Options struct {
	Sheet string

	// write to a temp file next to the target and rename it into place
	Atomic bool
}

// writes cues as rows of a single xlsx worksheet
type Writer struct {
	sheet  string
	atomic bool
}

func NewWriter(opts Options) *Writer {
	sheet := opts.Sheet
	if sheet == "" {
		sheet = DefaultSheet
	}
	return &Writer{
		sheet:  sheet,
		atomic: opts.Atomic,
	}
}

// Write replaces the file at path with a workbook holding the header row
// followed by one row per cue. The parent directory must already exist.
func (w *Writer) Write(cues []subtitle.Cue, path string) error {
	f, err := w.build(cues)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	defer f.Close()

	if w.atomic {
		err = writeAtomic(f, path)
	} else {
		err = writeDirect(f, path)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	return nil
}

func (w *Writer) build(cues []subtitle.Cue) (*excelize.File, error) {
	f := excelize.NewFile()

	if w.sheet != DefaultSheet {
		if err := f.SetSheetName(DefaultSheet, w.sheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("invalid sheet name %q: %w", w.sheet, err)
		}
	}

	sw, err := f.NewStreamWriter(w.sheet)
	if err != nil {
		f.Close()
		return nil, err
	}

	if err := sw.SetRow("A1", Header); err != nil {
		f.Close()
		return nil, err
	}

	for i, cue := range cues {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := checkCellText(cue.Text); err != nil {
			f.Close()
			return nil, fmt.Errorf("cue %d: %w", cue.Number, err)
		}
		row := []interface{}{cue.Number, cue.Begin, cue.End, cue.Text}
		if err := sw.SetRow(cell, row); err != nil {
			f.Close()
			return nil, fmt.Errorf("cue %d: %w", cue.Number, err)
		}
	}

	if err := sw.Flush(); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func writeDirect(f *excelize.File, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.WriteTo(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func writeAtomic(f *excelize.File, path string) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := createTemp(dir, base)
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := f.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	// a replaced file keeps its permissions
	if info, err := os.Stat(path); err == nil {
		if err := os.Chmod(tmpPath, info.Mode().Perm()); err != nil {
			os.Remove(tmpPath)
			return err
		}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// createTemp is os.CreateTemp with the 0666 &^ umask mode os.Create uses.
func createTemp(dir, base string) (*os.File, error) {
	for try := 0; try < 10000; try++ {
		name := filepath.Join(
			dir,
			"."+base+"-"+strconv.FormatUint(uint64(rand.Uint32()), 10)+".tmp",
		)
		file, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0666)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		return file, err
	}
	return nil, fmt.Errorf("failed to create temp file in %s", dir)
}
