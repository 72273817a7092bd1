package reader

import (
	"github.com/parquet-go/parquet-go"
)

// ColumnInfo describes a single leaf column of a parquet file for
// schema introspection. Nested fields are flattened with dot
// notation (e.g. "address.street").
type ColumnInfo struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	PhysicalType string `json:"physical_type"`
	LogicalType  string `json:"logical_type"`
	Required     bool   `json:"required"`
	Optional     bool   `json:"optional"`
	Repeated     bool   `json:"repeated"`
}

// SchemaInfo returns per-column metadata for every leaf field of the
// file, in schema order.
func (r *Reader) SchemaInfo() []ColumnInfo {
	var infos []ColumnInfo
	for _, field := range r.pqFile.Schema().Fields() {
		infos = append(infos, walkField(field, "", false)...)
	}
	return infos
}

// walkField flattens a field into ColumnInfo entries. Groups
// contribute only their leaf fields, with the group name carried as
// a dot-notation prefix. parentRepeated propagates repetition from
// enclosing list fields down to the leaves.
func walkField(field parquet.Field, prefix string, parentRepeated bool) []ColumnInfo {
	name := field.Name()
	if prefix != "" {
		name = prefix + "." + name
	}

	repeated := parentRepeated || field.Repeated()

	if children := field.Fields(); len(children) > 0 {
		var infos []ColumnInfo
		for _, child := range children {
			infos = append(infos, walkField(child, name, repeated)...)
		}
		return infos
	}

	return []ColumnInfo{{
		Name:         name,
		Type:         userFriendlyType(field),
		PhysicalType: physicalType(field),
		LogicalType:  logicalType(field),
		Required:     field.Required(),
		Optional:     field.Optional(),
		Repeated:     repeated,
	}}
}

// physicalType returns the parquet physical type name of a field.
func physicalType(field parquet.Field) string {
	if !field.Leaf() {
		return "GROUP"
	}

	switch field.Type().Kind() {
	case parquet.Boolean:
		return "BOOLEAN"
	case parquet.Int32:
		return "INT32"
	case parquet.Int64:
		return "INT64"
	case parquet.Int96:
		return "INT96"
	case parquet.Float:
		return "FLOAT"
	case parquet.Double:
		return "DOUBLE"
	case parquet.ByteArray:
		return "BYTE_ARRAY"
	case parquet.FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}

// logicalType returns the parquet logical type name of a field, or
// an empty string when the field has none.
func logicalType(field parquet.Field) string {
	if !field.Leaf() {
		return ""
	}

	lt := field.Type().LogicalType()
	if lt == nil {
		return ""
	}
	return lt.String()
}

// userFriendlyType converts a field's physical and logical types
// into the simpler type names shown to end users.
func userFriendlyType(field parquet.Field) string {
	if !field.Leaf() {
		return "GROUP"
	}

	// Logical type first, it is the more specific of the two.
	if lt := field.Type().LogicalType(); lt != nil {
		switch lt.String() {
		case "STRING", "UTF8":
			return "STRING"
		case "ENUM":
			return "ENUM"
		case "UUID":
			return "UUID"
		case "DATE":
			return "DATE"
		case "TIME":
			return "TIME"
		case "TIMESTAMP":
			return "TIMESTAMP"
		case "DECIMAL":
			return "DECIMAL"
		case "JSON":
			return "JSON"
		case "BSON":
			return "BSON"
		case "INT":
			switch field.Type().Kind() {
			case parquet.Int32:
				return "INT32"
			case parquet.Int64:
				return "INT64"
			}
		}
	}

	switch field.Type().Kind() {
	case parquet.Boolean:
		return "BOOLEAN"
	case parquet.Int32:
		return "INT32"
	case parquet.Int64:
		return "INT64"
	case parquet.Int96:
		return "INT96"
	case parquet.Float:
		return "FLOAT32"
	case parquet.Double:
		return "FLOAT64"
	case parquet.ByteArray:
		return "BYTE_ARRAY"
	case parquet.FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}
