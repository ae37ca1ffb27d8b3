package rendering

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// DocumentContentType is the MIME type of rendered documents.
const DocumentContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// DocumentExt is the file extension of rendered documents.
const DocumentExt = ".docx"

// isDirectivePart reports whether an archive part carries substitutable text.
// Styles, media and metadata parts pass through untouched.
func isDirectivePart(name string) bool {
	if name == "word/document.xml" {
		return true
	}
	if !strings.HasSuffix(name, ".xml") {
		return false
	}
	return strings.HasPrefix(name, "word/header") || strings.HasPrefix(name, "word/footer")
}

// rewriteParts opens the archive, applies transform to every directive part
// and reassembles the archive. All other parts are copied byte for byte,
// preserving names and compression methods.
func rewriteParts(archive []byte, transform func(name, content string) (string, error)) ([]byte, error) {
	reader, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, &ArchiveError{
			Message: "template is not a valid archive container",
			Cause:   err,
		}
	}

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)

	for _, file := range reader.File {
		content, err := readPart(file)
		if err != nil {
			return nil, err
		}

		if isDirectivePart(file.Name) {
			out, err := transform(file.Name, string(content))
			if err != nil {
				return nil, err
			}
			content = []byte(out)
		}

		header := &zip.FileHeader{
			Name:     file.Name,
			Method:   file.Method,
			Modified: file.Modified,
		}
		part, err := writer.CreateHeader(header)
		if err != nil {
			return nil, &ArchiveError{
				Message: fmt.Sprintf("failed to write part %s", file.Name),
				Cause:   err,
			}
		}
		if _, err := part.Write(content); err != nil {
			return nil, &ArchiveError{
				Message: fmt.Sprintf("failed to write part %s", file.Name),
				Cause:   err,
			}
		}
	}

	if err := writer.Close(); err != nil {
		return nil, &ArchiveError{
			Message: "failed to finalize archive",
			Cause:   err,
		}
	}
	return buf.Bytes(), nil
}

func readPart(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, &ArchiveError{
			Message: fmt.Sprintf("failed to open part %s", file.Name),
			Cause:   err,
		}
	}
	defer func() { _ = rc.Close() }()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, &ArchiveError{
			Message: fmt.Sprintf("failed to read part %s", file.Name),
			Cause:   err,
		}
	}
	return content, nil
}
