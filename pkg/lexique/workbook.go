package lexique

import (
	"os"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// LoadWorkbook reads a whole worksheet into memory. The first row is the
// header. An empty sheet name selects the first sheet of the workbook.
func LoadWorkbook(path, sheet string) (*Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WithStack(&SourceNotFoundError{Path: path})
		}
		return nil, errors.WithStack(err)
	}
	if info.IsDir() {
		return nil, errors.WithStack(&SourceNotFoundError{Path: path})
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open workbook %s", path)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.Errorf("workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "read sheet %q of %s", sheet, path)
	}
	if len(rows) == 0 {
		return nil, errors.Errorf("sheet %q of %s has no header row", sheet, path)
	}
	return NewTable(rows[0], rows[1:]), nil
}
