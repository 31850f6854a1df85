package gl

import (
	"fmt"
	"io"
)

// Sheet is an atlas surface cut into a row-major grid of equal cells.
type Sheet struct {
	Atlas                 *Surface
	Cells                 []Rectangle
	CellWidth, CellHeight int
}

// NewSheet takes ownership of atlas. A partial trailing row or column of
// cells is discarded.
func NewSheet(atlas *Surface, cellWidth, cellHeight int) (*Sheet, error) {
	if cellWidth <= 0 || cellHeight <= 0 {
		return nil, fmt.Errorf("cell %dx%d: %w", cellWidth, cellHeight, ErrInvalidSize)
	}

	columns := atlas.Width / cellWidth
	rows := atlas.Height / cellHeight
	cells := make([]Rectangle, 0, columns*rows)
	for i := range rows {
		for j := range columns {
			cells = append(cells, Rect(j*cellWidth, i*cellHeight, cellWidth, cellHeight))
		}
	}

	Logger().Debug("sheet created", "cells", len(cells), "columns", columns, "rows", rows)
	return &Sheet{
		Atlas:      atlas,
		Cells:      cells,
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
	}, nil
}

func DecodeSheet(r io.Reader, cellWidth, cellHeight int, q Quantizer) (*Sheet, error) {
	atlas, err := DecodeSurface(r, q)
	if err != nil {
		return nil, err
	}
	return NewSheet(atlas, cellWidth, cellHeight)
}

func LoadSheet(path string, cellWidth, cellHeight int, q Quantizer) (*Sheet, error) {
	atlas, err := LoadSurface(path, q)
	if err != nil {
		return nil, err
	}

	sheet, err := NewSheet(atlas, cellWidth, cellHeight)
	if err != nil {
		return nil, fmt.Errorf("could not load sheet %q: %w", path, err)
	}
	return sheet, nil
}

func (s *Sheet) Len() int {
	return len(s.Cells)
}

// Cell returns the i-th cell; it panics when i is out of range.
func (s *Sheet) Cell(i int) Rectangle {
	return s.Cells[i]
}

// Release frees the cells and the atlas.
func (s *Sheet) Release() {
	if s.Atlas != nil {
		s.Atlas.Release()
	}
	*s = Sheet{}
	Logger().Debug("sheet deallocated")
}
