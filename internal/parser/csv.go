package parser

import (
	"strconv"
	"strings"

	"github.com/hr-management-api/internal/models"
)

// utf8BOM is prepended to generated templates for spreadsheet
// compatibility and stripped from uploads before parsing
const utf8BOM = "\uFEFF"

// ParseEmployeeCSV parses raw employee CSV text into import rows.
//
// The first non-blank line is the header row and defines field order.
// Fields may be double-quote delimited: a quote character toggles quoted
// mode and a comma inside quotes is not a separator. Escaped quotes
// inside quoted fields are not supported. Blank lines are skipped.
//
// Returns models.ErrCSVTooShort when the content holds fewer than two
// non-blank lines (header-only or empty file).
func ParseEmployeeCSV(content string) ([]models.ImportRow, error) {
	content = strings.TrimPrefix(content, utf8BOM)

	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
	}
	if len(lines) < 2 {
		return nil, models.ErrCSVTooShort
	}

	headers := strings.Split(lines[0], ",")
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]models.ImportRow, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := parseLine(line)

		var row models.ImportRow
		for i, header := range headers {
			var value string
			if i < len(values) {
				value = strings.TrimSpace(values[i])
			}
			setField(&row, header, value)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// parseLine splits a single CSV line on commas, honoring double-quote
// delimited fields. A quote toggles "inside quoted field" mode; the
// quote characters themselves are not part of the field value.
func parseLine(line string) []string {
	var result []string
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			result = append(result, current.String())
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}

	result = append(result, current.String())
	return result
}

// setField assigns one header's value to the matching row field.
// baseSalary is coerced to a number (0 when blank), role and status get
// their domain defaults when blank, and other blank fields stay unset so
// downstream optional-field defaults apply uniformly. Unrecognized
// headers are ignored.
func setField(row *models.ImportRow, header, value string) {
	switch header {
	case "fullName":
		row.FullName = value
	case "email":
		row.Email = value
	case "phone":
		row.Phone = value
	case "idNumber":
		row.IDNumber = value
	case "department":
		row.Department = value
	case "position":
		row.Position = value
	case "location":
		row.Location = value
	case "startDate":
		row.StartDate = value
	case "contractType":
		row.ContractType = value
	case "baseSalary":
		if value != "" {
			row.BaseSalary, _ = strconv.ParseFloat(value, 64)
		}
	case "role":
		if value == "" {
			value = models.DefaultRole
		}
		row.Role = value
	case "status":
		if value == "" {
			value = models.DefaultStatus
		}
		row.Status = value
	case "managerId":
		row.ManagerID = value
	}
}
