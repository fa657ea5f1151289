// Package schemas provides embedded JSON Schemas for quantharness files.
package schemas

import _ "embed"

//go:embed suite_v1.json
var SuiteV1Schema []byte
