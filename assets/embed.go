// Package assets embeds the default word list shipped with the binary.
package assets

import (
	"embed"
	"io"
)

// WordList is the name of the embedded default list inside FS.
const WordList = "words.txt"

//go:embed words.txt
var FS embed.FS

// OpenWordList opens the embedded default list. One word per line; lines
// starting with '#' are comments.
func OpenWordList() (io.ReadCloser, error) {
	return FS.Open(WordList)
}
