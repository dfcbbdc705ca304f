package content

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// ErrFrontMatter is returned for unterminated or undecodable front matter.
var ErrFrontMatter = errors.New("front matter")

const frontMatterFence = "+++"

// Meta is the optional TOML header of a deck.
type Meta struct {
	Title      string `toml:"title"`
	Author     string `toml:"author"`
	ListMode   string `toml:"list_mode"`
	Transition string `toml:"transition"`
}

// splitFrontMatter separates a leading +++ delimited TOML block from the
// body. Input without a header is returned unchanged.
func splitFrontMatter(src []byte) (Meta, []byte, error) {
	var meta Meta
	src = bytes.TrimPrefix(src, []byte("\xef\xbb\xbf"))
	first, rest, ok := cutLine(src)
	if !ok && len(first) == 0 {
		return meta, src, nil
	}
	if string(bytes.TrimSpace(first)) != frontMatterFence {
		return meta, src, nil
	}

	var header bytes.Buffer
	for {
		line, tail, more := cutLine(rest)
		if string(bytes.TrimSpace(line)) == frontMatterFence {
			if _, err := toml.Decode(header.String(), &meta); err != nil {
				return Meta{}, nil, fmt.Errorf("%w: %v", ErrFrontMatter, err)
			}
			return meta, tail, nil
		}
		if !more {
			return Meta{}, nil, fmt.Errorf("%w: missing closing %q", ErrFrontMatter, frontMatterFence)
		}
		header.Write(line)
		header.WriteByte('\n')
		rest = tail
	}
}

func cutLine(b []byte) (line, rest []byte, ok bool) {
	line, rest, ok = bytes.Cut(b, []byte("\n"))
	return bytes.TrimSuffix(line, []byte("\r")), rest, ok
}
