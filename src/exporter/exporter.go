// Package exporter writes move histories to parquet and CSV and uploads both files.
package exporter

import (
	"context"
	"fmt"
	"io"

	"github.com/BielosX/wombat/pokepedia/src/apperrors"
	"github.com/BielosX/wombat/pokepedia/src/csv"
	"github.com/BielosX/wombat/pokepedia/src/parquet"
	"github.com/BielosX/wombat/pokepedia/src/pokepedia"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MoveSearcher interface {
	SearchMoves(ctx context.Context, names []string) ([]pokepedia.Move, error)
}

// Uploader stores a file; *s3.Client implements it.
type Uploader interface {
	PutFile(ctx context.Context, reader io.Reader, bucket, key, contentType string) error
}

type Result struct {
	ParquetFileName string `json:"parquetFileName"`
	CsvFileName     string `json:"csvFileName"`
	Rows            int    `json:"rows"`
}

type Exporter struct {
	moves    MoveSearcher
	uploader Uploader
	bucket   string
	sugar    *zap.SugaredLogger
	newId    func() string
}

func New(moves MoveSearcher, uploader Uploader, bucket string, sugar *zap.SugaredLogger) *Exporter {
	return &Exporter{
		moves:    moves,
		uploader: uploader,
		bucket:   bucket,
		sugar:    sugar,
		newId:    uuid.NewString,
	}
}

func (e *Exporter) Export(ctx context.Context, names []string) (*Result, error) {
	if len(names) == 0 {
		return nil, apperrors.Validationf("no moves to export")
	}
	moves, err := e.moves.SearchMoves(ctx, names)
	if err != nil {
		e.sugar.Errorf("Failed to search Moves: %s", err)
		return nil, err
	}
	parquetWriter, err := parquet.NewMoveWriter()
	if err != nil {
		e.sugar.Errorf("Failed to create Move Parquet Writer: %s", err)
		return nil, err
	}
	csvWriter := csv.NewMoveWriter()
	if err := csvWriter.WriteHeader(); err != nil {
		return nil, err
	}
	for _, move := range moves {
		e.sugar.Infof("Writing Move %s", move.RawName())
		for _, row := range parquet.ToMoveGenerations(move) {
			if err := parquetWriter.WriteMoveGeneration(&row); err != nil {
				e.sugar.Errorf("Error writing Move to Parquet: %s", err)
				return nil, err
			}
			if err := csvWriter.Write(row); err != nil {
				e.sugar.Errorf("Error writing Move to CSV: %s", err)
				return nil, err
			}
		}
	}
	if err := parquetWriter.Finish(); err != nil {
		return nil, err
	}
	if err := csvWriter.Finish(); err != nil {
		return nil, err
	}

	batchId := e.newId()
	parquetFileName := fmt.Sprintf("moves/%s.parquet", batchId)
	csvFileName := fmt.Sprintf("moves/%s.csv", batchId)
	e.sugar.Infof("Sending parquet file of size %d to S3", parquetWriter.Size())
	err = e.uploader.PutFile(ctx, parquetWriter.BufferReader(), e.bucket, parquetFileName, "application/vnd.apache.parquet")
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", parquetFileName, err)
	}
	e.sugar.Infof("Sending CSV file of size %d to S3", csvWriter.Size())
	err = e.uploader.PutFile(ctx, csvWriter.BufferReader(), e.bucket, csvFileName, "text/csv")
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", csvFileName, err)
	}
	return &Result{
		ParquetFileName: parquetFileName,
		CsvFileName:     csvFileName,
		Rows:            parquetWriter.Rows(),
	}, nil
}
