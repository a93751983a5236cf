package fileutil

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

type unicodeEncoding int

const (
	encodingUnknown unicodeEncoding = iota
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

// DecodeError reports a file whose content is not valid text
type DecodeError struct {
	Path string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: content is not valid UTF-8 text", e.Path)
}

// ReadText reads path as a single UTF-8 string
func ReadText(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	text, ok := NormalizeTextContent(content)
	if !ok {
		return "", &DecodeError{Path: path}
	}
	return text, nil
}

// ReadTerms reads a newline-delimited terms file, dropping blank lines
func ReadTerms(path string) ([]string, error) {
	text, err := ReadText(path)
	if err != nil {
		return nil, err
	}
	return SplitTerms(text), nil
}

// SplitTerms splits text into whitespace-stripped, non-empty lines
func SplitTerms(text string) []string {
	lines := strings.Split(text, "\n")
	terms := make([]string, 0, len(lines))
	for _, line := range lines {
		if term := strings.TrimSpace(line); term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}

// NormalizeTextContent converts BOM-prefixed content into a UTF-8 string.
// The boolean is false when the result is not valid UTF-8.
func NormalizeTextContent(content []byte) (string, bool) {
	if len(content) == 0 {
		return "", true
	}

	var text string
	switch detectUnicodeEncoding(content) {
	case encodingUTF8BOM:
		text = string(content[3:])
	case encodingUTF16LE:
		decoded, err := decodeUTF16(content, unicode.LittleEndian)
		if err != nil {
			return "", false
		}
		text = decoded
	case encodingUTF16BE:
		decoded, err := decodeUTF16(content, unicode.BigEndian)
		if err != nil {
			return "", false
		}
		text = decoded
	default:
		text = string(content)
	}

	return text, utf8.ValidString(text)
}

func detectUnicodeEncoding(sample []byte) unicodeEncoding {
	if bytes.HasPrefix(sample, []byte{0xEF, 0xBB, 0xBF}) {
		return encodingUTF8BOM
	}
	if len(sample) >= 2 {
		switch {
		case sample[0] == 0xFF && sample[1] == 0xFE:
			return encodingUTF16LE
		case sample[0] == 0xFE && sample[1] == 0xFF:
			return encodingUTF16BE
		}
	}
	return encodingUnknown
}

func decodeUTF16(content []byte, endian unicode.Endianness) (string, error) {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	decoded, err := decoder.Bytes(content)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
