package export

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/samber/lo"
	"github.com/tealeg/xlsx"

	apperrors "mp3-transcriber/internal/app/errors"
	"mp3-transcriber/internal/app/metrics"
	"mp3-transcriber/internal/app/model"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatZIP  Format = "zip"
	FormatXLSX Format = "xlsx"
)

// Formats lists the supported export formats.
func Formats() []Format {
	return []Format{FormatCSV, FormatZIP, FormatXLSX}
}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !lo.Contains(Formats(), f) {
		return "", apperrors.Wrapf(apperrors.ErrUnsupportedFormat, "format %q", s)
	}
	return f, nil
}

const (
	HeadersEnglish  = "en"
	HeadersJapanese = "ja"
)

const utf8BOM = "\xEF\xBB\xBF"

const sheetName = "Transcriptions"

// Exporter serializes a batch of results into a single downloadable artifact.
type Exporter struct {
	headers []string
	metrics *metrics.Metrics
}

// NewExporter picks the column headers by language; anything but "ja" is English.
func NewExporter(headerLanguage string, m *metrics.Metrics) *Exporter {
	headers := []string{"filename", "transcribed_text"}
	if headerLanguage == HeadersJapanese {
		headers = []string{"ファイル名", "書き起こしテキスト"}
	}
	return &Exporter{headers: headers, metrics: m}
}

// Headers returns the column headers used for tabular formats.
func (e *Exporter) Headers() []string {
	return append([]string(nil), e.headers...)
}

// Export serializes results in the given format. An empty result set is an error.
func (e *Exporter) Export(format Format, results []model.TranscriptionResult) (*model.ExportArtifact, error) {
	artifact, err := e.export(format, results)
	e.metrics.Export(string(format), err)
	return artifact, err
}

func (e *Exporter) export(format Format, results []model.TranscriptionResult) (*model.ExportArtifact, error) {
	if len(results) == 0 {
		return nil, apperrors.ErrNothingToExport
	}

	switch format {
	case FormatCSV:
		return e.ToCSV(results)
	case FormatZIP:
		return e.ToZIP(results)
	case FormatXLSX:
		return e.ToExcel(results)
	default:
		return nil, apperrors.Wrapf(apperrors.ErrUnsupportedFormat, "format %q", format)
	}
}

// ToCSV writes a UTF-8 CSV with a byte-order mark so spreadsheet tools
// detect the encoding.
func (e *Exporter) ToCSV(results []model.TranscriptionResult) (*model.ExportArtifact, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	writer := csv.NewWriter(&buf)
	if err := writer.Write(e.headers); err != nil {
		return nil, apperrors.Mark(err, apperrors.ErrSerializationFailed)
	}
	for _, r := range results {
		if err := writer.Write([]string{r.FileName, r.Text}); err != nil {
			return nil, apperrors.Mark(err, apperrors.ErrSerializationFailed)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, apperrors.Mark(err, apperrors.ErrSerializationFailed)
	}

	return &model.ExportArtifact{
		FileName: "transcriptions.csv",
		MIMEType: "text/csv",
		Data:     buf.Bytes(),
	}, nil
}

// ToZIP writes one deflated text entry per result.
func (e *Exporter) ToZIP(results []model.TranscriptionResult) (*model.ExportArtifact, error) {
	var buf bytes.Buffer
	archive := zip.NewWriter(&buf)

	for _, r := range results {
		w, err := archive.CreateHeader(&zip.FileHeader{
			Name:   EntryName(r.FileName),
			Method: zip.Deflate,
		})
		if err != nil {
			return nil, apperrors.Mark(err, apperrors.ErrSerializationFailed)
		}
		if _, err := w.Write([]byte(r.Text)); err != nil {
			return nil, apperrors.Mark(err, apperrors.ErrSerializationFailed)
		}
	}
	if err := archive.Close(); err != nil {
		return nil, apperrors.Mark(err, apperrors.ErrSerializationFailed)
	}

	return &model.ExportArtifact{
		FileName: "transcriptions.zip",
		MIMEType: "application/zip",
		Data:     buf.Bytes(),
	}, nil
}

func (e *Exporter) ToExcel(results []model.TranscriptionResult) (*model.ExportArtifact, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return nil, apperrors.Mark(err, apperrors.ErrSerializationFailed)
	}

	headerRow := sheet.AddRow()
	for _, h := range e.headers {
		headerRow.AddCell().Value = h
	}

	for _, r := range results {
		row := sheet.AddRow()
		row.AddCell().Value = r.FileName
		row.AddCell().Value = r.Text
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, apperrors.Mark(err, apperrors.ErrSerializationFailed)
	}

	return &model.ExportArtifact{
		FileName: "transcriptions.xlsx",
		MIMEType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:     buf.Bytes(),
	}, nil
}

// EntryName replaces the trailing extension of the base name with .txt.
// A name whose only dots are leading ones, like ".mp3", keeps its full name.
func EntryName(fileName string) string {
	base := filepath.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if !strings.Contains(strings.TrimLeft(base, "."), ".") {
		return base + ".txt"
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".txt"
}
