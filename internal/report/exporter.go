package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/AlexanderBarlow/catering-any/internal/models"
	"github.com/schollz/progressbar/v3"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// Exporter writes the ticket and catalog reports in the configured
// format (csv, json lines or parquet) to the configured destination
// (local directory or S3 bucket).
type Exporter struct {
	format string
	folder string
	sink   sink
}

func NewExporter(ctx context.Context, cfg *models.Config) (*Exporter, error) {
	switch cfg.OutputFormat {
	case "csv", "json", "parquet":
	default:
		return nil, fmt.Errorf("unsupported output format %q (want csv, json or parquet)", cfg.OutputFormat)
	}

	var dest sink
	if cfg.OutputDestination == "local" || cfg.OutputDestination == "" {
		dest = &localSink{basePath: cfg.OutputPath}
	} else {
		if cfg.CloudStorage.Provider != "s3" {
			return nil, fmt.Errorf("unsupported cloud storage provider: %s", cfg.CloudStorage.Provider)
		}
		s3dest, err := newS3Sink(ctx, cfg.CloudStorage.Region, cfg.CloudStorage.BucketName)
		if err != nil {
			return nil, err
		}
		dest = s3dest
	}

	return &Exporter{format: cfg.OutputFormat, folder: cfg.OutputFolder, sink: dest}, nil
}

// Export writes both reports. Rows stream through a progress bar so
// long exports show movement.
func (e *Exporter) Export(ctx context.Context, tickets []models.Ticket, items []models.CatalogItem) error {
	ticketRows := make([]interface{}, len(tickets))
	for i, t := range tickets {
		ticketRows[i] = ticketRow(t)
	}
	itemRows := make([]interface{}, len(items))
	for i, it := range items {
		itemRows[i] = itemRow(it)
	}

	if err := e.writeReport(ctx, "tickets", ticketRows, ticketHeaders, new(TicketRow)); err != nil {
		return fmt.Errorf("exporting tickets: %w", err)
	}
	if err := e.writeReport(ctx, "items", itemRows, itemHeaders, new(ItemRow)); err != nil {
		return fmt.Errorf("exporting items: %w", err)
	}
	return nil
}

func (e *Exporter) writeReport(ctx context.Context, name string, rows []interface{}, headers []string, schema interface{}) error {
	bar := progressbar.Default(int64(len(rows)), "exporting "+name)
	key := filepath.Join(e.folder, name+"."+e.format)

	if e.format == "parquet" {
		return e.writeParquetReport(ctx, key, rows, schema, bar)
	}

	var buf bytes.Buffer
	var err error
	switch e.format {
	case "csv":
		err = writeCSV(&buf, rows, headers, bar)
	case "json":
		err = writeJSONLines(&buf, rows, bar)
	}
	if err != nil {
		return err
	}
	return e.sink.Put(ctx, key, buf.Bytes())
}

// writeParquetReport writes straight to a local parquet file when the
// destination is local; anything else gets buffered and handed to the
// sink whole.
func (e *Exporter) writeParquetReport(ctx context.Context, key string, rows []interface{}, schema interface{}, bar *progressbar.ProgressBar) error {
	if l, ok := e.sink.(*localSink); ok {
		file, err := l.createParquetFile(key)
		if err != nil {
			return err
		}
		if err := writeParquet(file, rows, schema, bar); err != nil {
			file.Close()
			return err
		}
		return file.Close()
	}

	var buf bytes.Buffer
	if err := writeParquet(&bufferParquetFile{buf: &buf}, rows, schema, bar); err != nil {
		return err
	}
	return e.sink.Put(ctx, key, buf.Bytes())
}

func writeCSV(buf *bytes.Buffer, rows []interface{}, headers []string, bar *progressbar.ProgressBar) error {
	w := csv.NewWriter(buf)
	if err := w.Write(headers); err != nil {
		return err
	}
	for _, row := range rows {
		var record []string
		switch r := row.(type) {
		case TicketRow:
			record = r.record()
		case ItemRow:
			record = r.record()
		default:
			return fmt.Errorf("unknown row type %T", row)
		}
		if err := w.Write(record); err != nil {
			return err
		}
		bar.Add(1)
	}
	w.Flush()
	return w.Error()
}

func writeJSONLines(buf *bytes.Buffer, rows []interface{}, bar *progressbar.ProgressBar) error {
	enc := json.NewEncoder(buf)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return err
		}
		bar.Add(1)
	}
	return nil
}

func writeParquet(file source.ParquetFile, rows []interface{}, schema interface{}, bar *progressbar.ProgressBar) error {
	pw, err := writer.NewParquetWriter(file, schema, 4)
	if err != nil {
		return fmt.Errorf("failed to create ParquetWriter: %w", err)
	}
	for _, row := range rows {
		if err := pw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
		bar.Add(1)
	}
	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// bufferParquetFile adapts a bytes.Buffer to the parquet writer's file
// interface, so parquet output can be delivered to non-local sinks.
// Only forward writing is supported.
type bufferParquetFile struct {
	buf    *bytes.Buffer
	offset int64
}

var _ source.ParquetFile = (*bufferParquetFile)(nil)

func (f *bufferParquetFile) Open(name string) (source.ParquetFile, error)   { return f, nil }
func (f *bufferParquetFile) Create(name string) (source.ParquetFile, error) { return f, nil }

func (f *bufferParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		f.offset = offset
	case io.SeekCurrent:
		f.offset += offset
	default:
		return 0, fmt.Errorf("seek from end not supported for buffered output")
	}
	return f.offset, nil
}

func (f *bufferParquetFile) Read(p []byte) (int, error) {
	return 0, fmt.Errorf("read not supported for buffered output")
}

func (f *bufferParquetFile) Write(p []byte) (int, error) {
	n, err := f.buf.Write(p)
	f.offset += int64(n)
	return n, err
}

func (f *bufferParquetFile) Close() error { return nil }
