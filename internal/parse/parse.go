// Package parse turns staged uploads into plain text. PDF extraction uses
// github.com/ledongthuc/pdf; DOCX is read as a zip archive and the character
// data of word/document.xml is flattened.
package parse

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"career-backend/internal/staging"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ErrUnsupportedFormat is returned when the declared media type has no parser.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Error reports a failed text extraction and carries the underlying cause.
type Error struct {
	Mime string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Mime, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Text extracts plain text from a staged upload, dispatching on the declared
// media type. The staged file is released on every return path; release is
// best-effort and never masks the extraction result.
func Text(staged *staging.StagedUpload) (string, error) {
	defer staged.Release()

	switch staged.MimeType {
	case MimePDF, MimeDOCX:
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, staged.MimeType)
	}

	data, err := os.ReadFile(staged.Path)
	if err != nil {
		return "", &Error{Mime: staged.MimeType, Err: fmt.Errorf("read staged file: %w", err)}
	}

	var text string
	switch staged.MimeType {
	case MimePDF:
		text, err = pdfText(data)
	case MimeDOCX:
		text, err = docxText(data)
	}
	if err != nil {
		return "", &Error{Mime: staged.MimeType, Err: err}
	}
	return text, nil
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func docxText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", errors.New("document.xml file not found")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}

	return flattenDocumentXML(string(raw)), nil
}

// flattenDocumentXML collects character data and inserts newlines at
// paragraph and line-break boundaries.
func flattenDocumentXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
