package parquet

import (
	"io"

	"github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/writer"
)

type MoveWriter struct {
	buffer *buffer.BufferFile
	writer *writer.ParquetWriter
	rows   int
}

const InitialCapacity = 1024 * 1024

func NewMoveWriter() (*MoveWriter, error) {
	bufferFile := buffer.NewBufferFileCapacity(InitialCapacity)
	w, err := writer.NewParquetWriter(bufferFile, new(MoveGeneration), 4)
	if err != nil {
		return nil, err
	}
	return &MoveWriter{
		buffer: bufferFile,
		writer: w,
	}, nil
}

func (w *MoveWriter) WriteMoveGeneration(row *MoveGeneration) error {
	if err := w.writer.Write(row); err != nil {
		return err
	}
	w.rows++
	return nil
}

func (w *MoveWriter) Rows() int {
	return w.rows
}

// Finish flushes the footer and rewinds the buffer for reading.
func (w *MoveWriter) Finish() error {
	err := w.writer.WriteStop()
	if err != nil {
		return err
	}
	_, err = w.buffer.Seek(0, io.SeekStart)
	return err
}

func (w *MoveWriter) Size() int {
	return len(w.buffer.Bytes())
}

func (w *MoveWriter) BufferReader() io.Reader {
	return w.buffer
}
