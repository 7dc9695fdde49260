package utils

import (
	"reflect"
	"strings"
)

func GetFields(t any) []reflect.StructField {
	typeOf := reflect.TypeOf(t)
	var result []reflect.StructField
	for i := 0; i < typeOf.NumField(); i++ {
		result = append(result, typeOf.Field(i))
	}
	return result
}

// ParquetTagToKeyValue splits a parquet struct tag such as
// "name=power, type=INT32" into its properties. Entries without '=' are skipped.
func ParquetTagToKeyValue(tag string) map[string]string {
	result := make(map[string]string)
	for _, entry := range strings.Split(tag, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(entry), "=")
		if !found {
			continue
		}
		result[key] = value
	}
	return result
}

// CleanStr collapses all whitespace runs (including the form feeds found in
// catalog flavor text) into single spaces.
func CleanStr(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// NormalizeName turns user input like "  Fire Punch " into the catalog key "fire-punch".
func NormalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(CleanStr(name)), " ", "-")
}
