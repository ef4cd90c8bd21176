package utils

import (
	"database/sql"
	"fmt"
	"reflect"
)

// ScanStructByDBTags scans a `SELECT *` row into a struct whose fields carry
// `db` tags. Field order must match column order, which the migrations pin
// down; fields tagged `db:"-"` or untagged are skipped.
func ScanStructByDBTags(row *sql.Row, dest any) error {
	targets, err := scanTargets(dest)
	if err != nil {
		return err
	}

	return row.Scan(targets...)
}

// ScanStructByDBTagsForRows is the sql.Rows variant; it maps columns to
// fields by tag name, so it tolerates any column order.
func ScanStructByDBTagsForRows(rows *sql.Rows, dest any) error {
	columns, err := rows.Columns()
	if err != nil {
		return err
	}

	value, err := structValue(dest)
	if err != nil {
		return err
	}

	byTag := make(map[string]any, value.NumField())
	structType := value.Type()
	for i := 0; i < value.NumField(); i++ {
		tag := structType.Field(i).Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		byTag[tag] = value.Field(i).Addr().Interface()
	}

	targets := make([]any, len(columns))
	for i, column := range columns {
		target, ok := byTag[column]
		if !ok {
			var discard any
			target = &discard
		}
		targets[i] = target
	}

	return rows.Scan(targets...)
}

func scanTargets(dest any) ([]any, error) {
	value, err := structValue(dest)
	if err != nil {
		return nil, err
	}

	structType := value.Type()
	targets := make([]any, 0, value.NumField())
	for i := 0; i < value.NumField(); i++ {
		tag := structType.Field(i).Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		targets = append(targets, value.Field(i).Addr().Interface())
	}

	return targets, nil
}

func structValue(dest any) (reflect.Value, error) {
	value := reflect.ValueOf(dest)
	if value.Kind() != reflect.Pointer || value.IsNil() {
		return reflect.Value{}, fmt.Errorf("scan destination must be a non-nil struct pointer, got %T", dest)
	}

	value = value.Elem()
	if value.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("scan destination must point to a struct, got %T", dest)
	}

	return value, nil
}
