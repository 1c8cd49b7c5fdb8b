// Command ppdump implements the reference driver contract: it reads
// source text, tokenises it, and prints one line per preprocessing
// token.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/spf13/afero"

	"github.com/cppgm/pptoken/pptoken"
	"github.com/cppgm/pptoken/pptoken/token"
)

// CLI is the top-level flag/command set, parsed by kong the way
// connerohnesorge-spectr's cmd.CLI is.
type CLI struct {
	File  string `arg:"" optional:"" help:"Source file to tokenise. Reads standard input if omitted."`
	Batch string `help:"Tokenise every file in this directory instead of a single file or stdin." type:"path"`
	Watch string `help:"Re-tokenise FILE each time it changes, printing each run separated by a line of dashes." type:"path"`
	Debug bool   `help:"Pretty-print each token with its Go representation instead of the driver's wire format."`
}

var fs = afero.NewOsFs()

func main() {
	log.SetFlags(0)

	cli := &CLI{}
	kong.Parse(cli,
		kong.Name("ppdump"),
		kong.Description("Dump preprocessing tokens from C++ source text"),
		kong.UsageOnError(),
	)

	switch {
	case cli.Watch != "":
		if err := runWatch(cli.Watch, cli.Debug); err != nil {
			log.Fatalf("ppdump: %v", err)
		}
	case cli.Batch != "":
		if err := runBatch(cli.Batch, cli.Debug); err != nil {
			log.Fatalf("ppdump: %v", err)
		}
	default:
		if err := runSingle(cli.File, cli.Debug); err != nil {
			log.Fatalf("ppdump: %v", err)
		}
	}
}

func runSingle(path string, debug bool) error {
	input, err := readInput(path)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return dump(os.Stdout, input, debug)
}

func runBatch(dir string, debug bool) error {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return fmt.Errorf("reading batch directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := dir + "/" + entry.Name()
		input, err := afero.ReadFile(fs, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		fmt.Printf("==> %s <==\n", path)
		if err := dump(os.Stdout, input, debug); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return afero.ReadFile(fs, path)
}

// dump tokenises input and writes the driver wire format (or, in
// debug mode, a repr-rendered form) for every token to w.
func dump(w io.Writer, input []byte, debug bool) error {
	tz := pptoken.New(input)
	for {
		tok, err := tz.NextToken()
		if err != nil {
			return err
		}
		if debug {
			fmt.Fprintln(w, repr.String(tok))
		} else {
			writeWireLine(w, tok)
		}
		if tok.Kind == token.EOF {
			return nil
		}
	}
}

// writeWireLine writes one line of the driver's wire format:
// "<kind-name> <byte-count> <lexeme-bytes>\n", with byte-count and
// lexeme omitted for whitespace-sequence, new-line and eof.
func writeWireLine(w io.Writer, tok token.Token) {
	switch tok.Kind {
	case token.Whitespace, token.NewLine, token.EOF:
		fmt.Fprintln(w, tok.Kind.DriverName())
	default:
		fmt.Fprintf(w, "%s %d %s\n", tok.Kind.DriverName(), len(tok.Lexeme), tok.Lexeme)
	}
}

// runWatch re-tokenises path every time it changes, for interactive
// grammar exploration, in the style of connerohnesorge-spectr's
// internal/track.Watcher: debounced fsnotify events on the
// containing directory, filtered down to the one watched file.
func runWatch(path string, debug bool) error {
	w, err := newFileWatcher(path)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := dumpOnce(path, debug); err != nil {
		log.Printf("ppdump: %v", err)
	}

	for {
		select {
		case <-w.Events():
			fmt.Println(strings.Repeat("-", 40))
			if err := dumpOnce(path, debug); err != nil {
				log.Printf("ppdump: %v", err)
			}
		case err := <-w.Errors():
			return err
		}
	}
}

func dumpOnce(path string, debug bool) error {
	input, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return dump(os.Stdout, input, debug)
}
