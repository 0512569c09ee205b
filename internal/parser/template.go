package parser

import (
	"strings"
)

// TemplateHeaders is the fixed set of recognized import columns, in
// template order
var TemplateHeaders = []string{
	"fullName",
	"email",
	"phone",
	"idNumber",
	"department",
	"position",
	"location",
	"startDate",
	"contractType",
	"baseSalary",
	"role",
	"status",
	"managerId",
}

var templateSampleRow = []string{
	"Nguyen Van A",
	"nva@company.com",
	"0909123456",
	"079123456789",
	"Product Development",
	"Senior Developer",
	"Ho Chi Minh City",
	"2024-01-15",
	"Full-time",
	"25000000",
	"employee",
	"active",
	"", // managerId is optional
}

// EmployeeTemplate generates the import template CSV: the header row
// plus one sample row that passes row validation.
func EmployeeTemplate() string {
	return strings.Join(TemplateHeaders, ",") + "\n" + strings.Join(templateSampleRow, ",")
}

// EmployeeTemplateDownload returns the template bytes prefixed with a
// UTF-8 BOM so spreadsheet applications detect the encoding.
func EmployeeTemplateDownload() []byte {
	return []byte(utf8BOM + EmployeeTemplate())
}
