package source

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Encoding selects how raw source bytes are interpreted before lexing.
type Encoding uint8

const (
	// EncodingAuto keeps valid UTF-8 as is and falls back to ISO-8859-1 otherwise.
	EncodingAuto Encoding = iota
	// EncodingUTF8 never transcodes; invalid sequences reach the lexer as error tokens.
	EncodingUTF8
	// EncodingLatin1 always transcodes from ISO-8859-1, the character set of VHDL-93.
	EncodingLatin1
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "utf-8"
	case EncodingLatin1:
		return "latin-1"
	default:
		return "auto"
	}
}

// ParseEncoding maps a config or flag value to an Encoding.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return EncodingAuto, nil
	case "utf-8", "utf8":
		return EncodingUTF8, nil
	case "latin-1", "latin1", "iso-8859-1":
		return EncodingLatin1, nil
	}
	return EncodingAuto, fmt.Errorf("unknown source encoding %q (expected auto|utf-8|latin-1)", s)
}

// Normalize strips a UTF-8 BOM, applies the requested encoding and folds CRLF to LF.
func Normalize(content []byte, enc Encoding) ([]byte, FileFlags, error) {
	var flags FileFlags

	content, hadBOM := removeBOM(content)
	if hadBOM {
		flags |= FileHadBOM
	}

	transcode := enc == EncodingLatin1 || (enc == EncodingAuto && !hadBOM && !utf8.Valid(content))
	if transcode {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(content)
		if err != nil {
			return nil, flags, fmt.Errorf("decode latin-1: %w", err)
		}
		content = decoded
		flags |= FileDecodedLatin1
	}

	content, hadCRLF := normalizeCRLF(content)
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return content, flags, nil
}
