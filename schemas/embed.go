// Package schemas holds the JSON Schemas of the persisted data formats.
package schemas

import "embed"

// DocumentSchemaFile is the schema of a resume document snapshot.
const DocumentSchemaFile = "document.schema.json"

// FS contains every *.schema.json file of this directory.
//
//go:embed *.schema.json
var FS embed.FS

// DocumentSchema returns the raw document schema.
func DocumentSchema() []byte {
	data, err := FS.ReadFile(DocumentSchemaFile)
	if err != nil {
		panic("embedded document schema missing: " + err.Error())
	}
	return data
}
