// Package recordread loads the scraper's intercepted-records JSON files.
package recordread

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/gyeh/claimflat/internal/model"
	"github.com/gyeh/claimflat/internal/normalize"
)

// ErrNotArray is returned when a file's top-level JSON value is not an array.
var ErrNotArray = errors.New("file does not contain a JSON array")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FileResult describes one input file.
type FileResult struct {
	Path     string
	SHA256   string
	Records  []model.InterceptedRecord
	Rejected int // array elements that were not decodable records
}

// ReadFile decodes one file. The whole file must be a JSON array; elements
// that fail to decode are logged, counted and dropped without failing the
// file.
func ReadFile(path string, log zerolog.Logger) (*FileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%s: %w", path, ErrNotArray)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	res := &FileResult{
		Path:    path,
		SHA256:  normalize.TextHash(string(data)),
		Records: make([]model.InterceptedRecord, 0, len(elems)),
	}
	for i, raw := range elems {
		var rec model.InterceptedRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			res.Rejected++
			log.Warn().Err(err).Str("file", filepath.Base(path)).Int("index", i).Msg("record rejected")
			continue
		}
		res.Records = append(res.Records, rec)
	}
	return res, nil
}

// ReadResult aggregates every input file of a run.
type ReadResult struct {
	Records     []model.InterceptedRecord
	Files       []*FileResult
	FilesFailed int
	Rejected    int
	Duration    time.Duration
}

// ReadAll reads paths in order and concatenates their records. A file that
// cannot be read or parsed is logged and skipped; it never aborts the rest.
func ReadAll(paths []string, log zerolog.Logger) *ReadResult {
	start := time.Now()
	out := &ReadResult{}

	for _, path := range paths {
		fr, err := ReadFile(path, log)
		if err != nil {
			out.FilesFailed++
			log.Warn().Err(err).Str("file", path).Msg("skipping input file")
			continue
		}
		out.Files = append(out.Files, fr)
		out.Records = append(out.Records, fr.Records...)
		out.Rejected += fr.Rejected

		log.Info().
			Str("file", filepath.Base(path)).
			Str("sha256", fr.SHA256).
			Int("records", len(fr.Records)).
			Int("rejected", fr.Rejected).
			Msg("input file read")
	}

	out.Duration = time.Since(start)
	return out
}
