package assets

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// ErrNoHeader is returned when the input has no usable header line.
var ErrNoHeader = errors.New("asset file has no header")

// fieldAliases maps each canonical asset field to the header spellings seen
// in customer spreadsheets. Evaluation is deterministic: fields in declared
// order, first matching alias wins, one column per field.
var fieldAliases = []struct {
	field   string
	aliases []string
}{
	{"hostname", []string{"hostname", "host", "terminal", "terminal id", "atm"}},
	{"serialNumber", []string{"serial number", "serial", "sn", "serie", "numero de serie"}},
	{"model", []string{"model", "modelo", "machine model"}},
	{"locationName", []string{"location", "location name", "site", "agencia", "local"}},
	{"customerName", []string{"customer", "customer name", "client", "cliente"}},
}

// Import reads a delimited asset file and produces flat asset records. The
// delimiter is probed from the header line (semicolon-exported spreadsheets
// are common). Rows shorter than the header are padded; surplus columns are
// ignored.
func Import(r io.Reader) ([]domain.Asset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(strings.NewReader(string(raw)))
	reader.Comma = probeDelimiter(string(raw))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}

	columns := mapHeader(rows[0])
	if len(columns) == 0 {
		return nil, ErrNoHeader
	}

	result := make([]domain.Asset, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		asset := domain.Asset{
			Hostname:     cell(row, columns["hostname"]),
			SerialNumber: cell(row, columns["serialNumber"]),
			Model:        cell(row, columns["model"]),
			LocationName: cell(row, columns["locationName"]),
			CustomerName: cell(row, columns["customerName"]),
		}
		result = append(result, asset)
	}
	return result, nil
}

// mapHeader resolves each canonical field to a column index, or -1.
func mapHeader(header []string) map[string]int {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = strings.ToLower(strings.TrimSpace(h))
	}

	columns := map[string]int{}
	claimed := map[int]bool{}
	matched := false
	for _, entry := range fieldAliases {
		columns[entry.field] = -1
		for _, alias := range entry.aliases {
			for i, h := range normalized {
				if h == alias && !claimed[i] {
					columns[entry.field] = i
					claimed[i] = true
					matched = true
					break
				}
			}
			if columns[entry.field] >= 0 {
				break
			}
		}
	}
	if !matched {
		return nil
	}
	return columns
}

func probeDelimiter(content string) rune {
	line := content
	if idx := strings.IndexByte(content, '\n'); idx >= 0 {
		line = content[:idx]
	}
	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';'
	}
	return ','
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func emptyRow(row []string) bool {
	for _, col := range row {
		if strings.TrimSpace(col) != "" {
			return false
		}
	}
	return true
}
