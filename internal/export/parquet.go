package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/arvindrk/eatdecider/internal/cloudwriter"
	"github.com/arvindrk/eatdecider/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/writer"
)

type feedbackRow struct {
	ID        string `parquet:"name=id, type=BYTE_ARRAY, convertedtype=UTF8"`
	UserKey   string `parquet:"name=user_key, type=BYTE_ARRAY, convertedtype=UTF8"`
	ItemID    string `parquet:"name=item_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Outcome   string `parquet:"name=outcome, type=BYTE_ARRAY, convertedtype=UTF8"`
	Timestamp int64  `parquet:"name=timestamp, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
}

// WriteLocal writes the feedback log as a parquet file under dir and
// returns the file path.
func WriteLocal(dir string, events []models.FeedbackEvent) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("feedback-%s.parquet", time.Now().UTC().Format("20060102T150405Z")))

	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return "", fmt.Errorf("creating parquet file: %w", err)
	}
	pw, err := writer.NewParquetWriter(fw, new(feedbackRow), 4)
	if err != nil {
		fw.Close()
		return "", fmt.Errorf("creating parquet writer: %w", err)
	}

	for _, ev := range events {
		row := feedbackRow{
			ID:        ev.ID,
			UserKey:   ev.UserKey,
			ItemID:    ev.ItemID,
			Outcome:   string(ev.Outcome),
			Timestamp: ev.Timestamp.UnixMilli(),
		}
		if err := pw.Write(row); err != nil {
			pw.WriteStop()
			fw.Close()
			return "", fmt.Errorf("writing parquet row: %w", err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		fw.Close()
		return "", fmt.Errorf("finalizing parquet file: %w", err)
	}
	if err := fw.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// Upload copies a finished export to cloud storage; the object key
// mirrors the local file name.
func Upload(ctx context.Context, uploader cloudwriter.Uploader, bucket, localPath string) error {
	f, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("reading export: %w", err)
	}
	defer f.Close()
	return uploader.Upload(ctx, bucket, filepath.Base(localPath), f)
}
