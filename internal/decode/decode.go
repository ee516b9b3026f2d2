// Package decode turns uploaded documents into plain text for the extractor.
// It is a containment boundary: a document that cannot be decoded yields an
// error here and an empty partial record upstream, never a failed request.
package decode

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/xuri/excelize/v2"
)

// Text decodes one uploaded document by extension. Spreadsheets are
// serialized row-wise so keyword/value pairs from adjacent cells end up on
// the same line, which is what the extractor's patterns expect.
func Text(filename string, content []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm", ".xltx":
		return excelText(content)
	case ".pdf":
		return pdfText(content)
	case ".csv", ".tsv", ".txt":
		return string(content), nil
	default:
		return "", fmt.Errorf("unsupported document type %q", filepath.Ext(filename))
	}
}

func excelText(content []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("read sheet %s: %w", sheet, err)
		}
		for _, row := range rows {
			b.WriteString(strings.Join(row, " "))
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}

// pdfText extracts the plain text of every page. The pdf library can panic on
// malformed files, so the recover converts that into a decode error.
func pdfText(content []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	data, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return string(data), nil
}
