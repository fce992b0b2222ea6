package graphmaker

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/domino14/wordplay/wordgraph"
)

var upper = cases.Upper(language.Und)

// NormalizeWord puts a word in the form the graph stores: NFC, upper case.
// Every letter must fit in a single byte, and the separator and blank token
// are not letters.
func NormalizeWord(w string) (string, error) {
	w = upper.String(norm.NFC.String(strings.TrimSpace(w)))
	for _, r := range w {
		if r > 0xff || r <= ' ' || r == wordgraph.Separator || r == '?' {
			return "", fmt.Errorf("word %q: unsupported letter %q", w, r)
		}
	}
	return w, nil
}

// ReadWordList reads one word per line. Only the first field of a line is
// used, so lists with definitions can be read as-is. Blank lines and lines
// starting with "#" are skipped. With latin1 set the input is decoded from
// ISO 8859-1 instead of UTF-8.
func ReadWordList(r io.Reader, latin1 bool) ([]string, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	var words []string
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		w, err := NormalizeWord(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
