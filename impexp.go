package commandcenter

import (
	"encoding/csv"
	"fmt"
	"io"
)

// this file contains functions to handle the import/export format.
// It should remain human readable, single file, and round-trip exactly.
//
// The format is a CSV table with three required columns: Ticker,
// Quantity and Avg_Cost. Additional columns are ignored on import and
// omitted on export.

// ImportRecords reads the import/export format from 'r' into raw
// records, ready for Store.Load. Only the header is interpreted here;
// field-level validation happens in the store so that a bad row leaves
// the prior portfolio untouched.
func ImportRecords(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	// short rows become records with missing fields, a store-level error
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read portfolio header: %w", err)
	}

	columns := make(map[int]string, len(header))
	found := make(map[string]bool, 3)
	for i, name := range header {
		columns[i] = name
		found[name] = true
	}
	for _, required := range []string{FieldTicker, FieldQuantity, FieldAvgCost} {
		if !found[required] {
			return nil, &SchemaError{Field: required, Reason: "column missing from header"}
		}
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read portfolio row %d: %w", len(records)+1, err)
		}
		rec := make(Record, len(row))
		for i, value := range row {
			if name, ok := columns[i]; ok {
				rec[name] = value
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// ExportHoldings writes the holdings to 'w' in the import/export format,
// exactly the three canonical columns in insertion order.
func ExportHoldings(w io.Writer, holdings []Holding) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{FieldTicker, FieldQuantity, FieldAvgCost}); err != nil {
		return fmt.Errorf("cannot write portfolio header: %w", err)
	}
	for _, h := range holdings {
		row := []string{h.Ticker, h.Quantity.String(), h.AvgCost.value.String()}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write holding %q: %w", h.Ticker, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
