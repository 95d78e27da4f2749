package archivers

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sync"

	"factory-events/internal/models"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"
)

// maxPooledBufferCap keeps one oversized batch from pinning its buffer in the pool.
const maxPooledBufferCap = 1 << 20

var (
	bufferPool = sync.Pool{
		New: func() any { return bytes.NewBuffer(make([]byte, 0, 64<<10)) },
	}
	gzipWriterPool = sync.Pool{
		New: func() any {
			w, _ := gzip.NewWriterLevel(nil, gzip.BestSpeed)
			return w
		},
	}
)

// BatchEncoder turns a batch of stored rows into gzip-compressed JSON lines and back.
//
//go:generate mockgen -source=batch_encoder.go -destination=./mocks/batch_encoder_mock.go -package=mocks
type BatchEncoder interface {
	Encode(rows []*models.Event) ([]byte, error)
	Decode(r io.Reader) ([]*models.Event, error)
}

type jsonlGzipEncoder struct{}

func NewBatchEncoder() BatchEncoder {
	return jsonlGzipEncoder{}
}

// Encode writes one JSON object per line. The returned slice is owned by the caller.
func (jsonlGzipEncoder) Encode(rows []*models.Event) ([]byte, error) {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer putBuffer(buf)

	gz := gzipWriterPool.Get().(*gzip.Writer)
	gz.Reset(buf)
	defer gzipWriterPool.Put(gz)

	enc := json.NewEncoder(gz)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			_ = gz.Close()
			return nil, fmt.Errorf("failed to encode event %q: %w", row.EventID, err)
		}
	}
	if err := gz.Close(); err != nil {
		return nil, fmt.Errorf("failed to flush gzip stream: %w", err)
	}

	data := make([]byte, buf.Len())
	copy(data, buf.Bytes())
	return data, nil
}

func (jsonlGzipEncoder) Decode(r io.Reader) ([]*models.Event, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open gzip stream: %w", err)
	}
	defer gz.Close()

	rows := []*models.Event{}
	scanner := bufio.NewScanner(gz)
	scanner.Buffer(make([]byte, 0, 64<<10), 1<<20)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var row models.Event
		if err := json.Unmarshal(line, &row); err != nil {
			return nil, fmt.Errorf("failed to decode line %d: %w", len(rows)+1, err)
		}
		rows = append(rows, &row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read archived batch: %w", err)
	}
	return rows, nil
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferCap {
		return
	}
	bufferPool.Put(buf)
}
