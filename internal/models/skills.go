package models

import (
	"database/sql/driver"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// Skills is stored as a postgres text[] column.
type Skills []string

func (s *Skills) Scan(src any) error {
	if src == nil {
		*s = Skills{}
		return nil
	}
	var out []string
	if err := pgtype.NewMap().SQLScanner(&out).Scan(src); err != nil {
		return fmt.Errorf("scan skills: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*s = out
	return nil
}

func (s Skills) Value() (driver.Value, error) {
	list := []string(s)
	if list == nil {
		list = []string{}
	}
	buf, err := pgtype.NewMap().Encode(pgtype.TextArrayOID, pgtype.TextFormatCode, list, nil)
	if err != nil {
		return nil, fmt.Errorf("encode skills: %w", err)
	}
	return string(buf), nil
}
