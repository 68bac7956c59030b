package bench

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

/*

Puzzle files: one puzzle per line

*/

// ReadPuzzles collects puzzle texts from a reader, one per line.
// Blank lines and lines starting with '#' are skipped; no puzzle
// validation happens here, Run parses strictly.
func ReadPuzzles(r io.Reader) ([]string, error) {
	var texts []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		texts = append(texts, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading puzzles: %w", err)
	}
	return texts, nil
}

// ReadPuzzleFile is ReadPuzzles over a named file.
func ReadPuzzleFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadPuzzles(f)
}
