package extract

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// extractDOCX pulls the paragraph text out of a Word package. A .docx file
// is a zip archive whose body lives in word/document.xml; paragraph runs
// are <w:t> elements inside <w:p> blocks.
func extractDOCX(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open docx package: %w", err)
	}
	defer zr.Close()

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", errors.New("docx package has no word/document.xml")
	}

	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("open document.xml: %w", err)
	}
	defer rc.Close()

	text, err := collectParagraphs(rc)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", errors.New("no extractable text in docx")
	}
	return text, nil
}

func collectParagraphs(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var out, para strings.Builder
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse document.xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				var s string
				if err := dec.DecodeElement(&s, &t); err != nil {
					return "", fmt.Errorf("parse document.xml: %w", err)
				}
				para.WriteString(s)
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				// keep only paragraphs with visible content
				if strings.TrimSpace(para.String()) != "" {
					if out.Len() > 0 {
						out.WriteByte('\n')
					}
					out.WriteString(para.String())
				}
				para.Reset()
			}
		}
	}
	return strings.TrimSpace(out.String()), nil
}
