package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"reflect"

	"github.com/BielosX/wombat/pokepedia/src/parquet"
	"github.com/BielosX/wombat/pokepedia/src/utils"
	"github.com/xitongsys/parquet-go-source/buffer"
)

// MoveWriter writes parquet.MoveGeneration rows using the parquet column names as header.
type MoveWriter struct {
	buffer *buffer.BufferFile
	writer *csv.Writer
	fields []reflect.StructField
}

const InitialCapacity = 1024 * 1024

func NewMoveWriter() *MoveWriter {
	bufferFile := buffer.NewBufferFileCapacity(InitialCapacity)
	writer := csv.NewWriter(bufferFile)
	fields := utils.GetFields(parquet.MoveGeneration{})
	return &MoveWriter{
		buffer: bufferFile,
		writer: writer,
		fields: fields,
	}
}

func (w *MoveWriter) WriteHeader() error {
	var parquetNames []string
	for _, field := range w.fields {
		tag := field.Tag.Get("parquet")
		properties := utils.ParquetTagToKeyValue(tag)
		parquetNames = append(parquetNames, properties["name"])
	}
	return w.writer.Write(parquetNames)
}

// Write renders every column with fmt; nil optional columns become empty cells.
func (w *MoveWriter) Write(row parquet.MoveGeneration) error {
	value := reflect.ValueOf(row)
	var converted []string
	for _, field := range w.fields {
		fieldValue := value.FieldByName(field.Name)
		if fieldValue.Kind() == reflect.Pointer {
			if fieldValue.IsNil() {
				converted = append(converted, "")
				continue
			}
			fieldValue = fieldValue.Elem()
		}
		converted = append(converted, fmt.Sprint(fieldValue.Interface()))
	}
	return w.writer.Write(converted)
}

func (w *MoveWriter) Finish() error {
	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		return err
	}
	_, err := w.buffer.Seek(0, io.SeekStart)
	return err
}

func (w *MoveWriter) Size() int {
	return len(w.buffer.Bytes())
}

func (w *MoveWriter) BufferReader() io.Reader {
	return w.buffer
}
