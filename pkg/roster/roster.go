// Package roster loads campaign recipient tables from tabular files.
//
// A table must have an "email" column and may have an "entity name" column
// (header matching is case-insensitive). Rows whose address fails syntactic
// validation are not silently dropped: they come back in Table.Invalid so
// the operator can fix the source file. Only the valid rows should reach
// the dispatcher.
package roster

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mailfleet/mailfleet"
	"github.com/mailfleet/mailfleet/pkg/emailaddr"
)

const (
	emailColumn = "email"
	nameColumn  = "entity name"
)

// ErrMissingEmailColumn indicates the table has no "email" column.
var ErrMissingEmailColumn = errors.New(`roster is missing the required "email" column`)

// Table is one loaded recipient set.
type Table struct {
	Recipients []mailfleet.Recipient // rows with a valid address, in file order
	Invalid    []InvalidRow          // rows rejected by address validation
}

// InvalidRow points at a source row whose address failed validation.
type InvalidRow struct {
	Row     int    // 1-based row number in the source file (header is row 1)
	Address string // the rejected value, possibly empty
}

func (r InvalidRow) String() string {
	return fmt.Sprintf("row %d: %q", r.Row, r.Address)
}

// fromRows builds a Table from raw cells, header row first.
func fromRows(rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, ErrMissingEmailColumn
	}

	emailIdx, nameIdx := -1, -1
	for i, h := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case emailColumn:
			emailIdx = i
		case nameColumn:
			nameIdx = i
		}
	}
	if emailIdx == -1 {
		return nil, ErrMissingEmailColumn
	}

	table := &Table{}
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}

		addr := strings.TrimSpace(cell(row, emailIdx))
		if !emailaddr.IsValid(addr) {
			table.Invalid = append(table.Invalid, InvalidRow{Row: i + 2, Address: addr})
			continue
		}

		table.Recipients = append(table.Recipients, mailfleet.Recipient{
			DisplayName: strings.TrimSpace(cell(row, nameIdx)),
			Address:     addr,
		})
	}
	return table, nil
}

// cell returns the column value, tolerating short rows (spreadsheet readers
// drop trailing empty cells).
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
