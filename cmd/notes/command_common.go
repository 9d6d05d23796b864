package main

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/mattn/go-runewidth"

	"notes/internal/notes"
	"notes/internal/types"
)

const (
	version = "dev"

	titleColumnWidth   = 32
	snippetColumnWidth = 48
	timeLayout         = "2006-01-02 15:04"
)

func printNotes(output io.Writer, list []types.Note) {
	writer := tabwriter.NewWriter(output, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tUPDATED\tTITLE\tSNIPPET")
	for _, note := range notes.SortForDisplay(list) {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n",
			note.ID,
			formatUpdated(note),
			fitColumn(note.DisplayTitle(), titleColumnWidth),
			fitColumn(notes.Snippet(note.Content, snippetColumnWidth), snippetColumnWidth),
		)
	}
	_ = writer.Flush()
}

func formatUpdated(note types.Note) string {
	if !note.HasTimestamp() {
		return "-"
	}
	return note.SortTime().In(time.Local).Format(timeLayout)
}

// fitColumn keeps wide runes from breaking tabwriter alignment.
func fitColumn(text string, width int) string {
	text = strings.ReplaceAll(text, "\t", " ")
	if runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, "…")
}

// readContent treats "-" as a request to read stdin.
func readContent(value string, stdin io.Reader) (string, error) {
	if value != "-" {
		return value, nil
	}
	if stdin == nil {
		return "", fmt.Errorf("no stdin available")
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		var revision string
		var modified string
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.modified":
				modified = setting.Value
			}
		}
		if revision != "" {
			if modified == "true" {
				return revision + "-dirty"
			}
			return revision
		}
	}

	exe, err := os.Executable()
	if err == nil {
		file, err := os.Open(exe)
		if err == nil {
			defer file.Close()
			hasher := sha256.New()
			if _, err := io.Copy(hasher, file); err == nil {
				sum := hasher.Sum(nil)
				return fmt.Sprintf("bin-%x", sum[:6])
			}
		}
	}

	return version
}
