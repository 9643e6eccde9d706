package console

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"shrinkit_go/pkg/fileio"
	"shrinkit_go/pkg/huffman"
	"shrinkit_go/pkg/logger"
)

const (
	compressedExt   = ".huf"
	decompressedPre = "unhuf."
)

// Console is the interactive compress/decompress loop over local files.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
	log logger.Logger
}

func New(in io.Reader, out io.Writer, l logger.Logger) *Console {
	return &Console{in: bufio.NewScanner(in), out: out, log: l}
}

// Run loops until the user quits or input ends.
func (c *Console) Run() error {
	c.intro()
	for {
		choice, ok := c.prompt("\nYour options are:\nC) compress file\nD) decompress file\nQ) quit\n\nEnter your choice: ")
		if !ok {
			return c.in.Err()
		}
		switch strings.ToUpper(choice) {
		case "Q":
			return nil
		case "C":
			c.compressFile()
		case "D":
			c.decompressFile()
		}
	}
}

func (c *Console) intro() {
	fmt.Fprintln(c.out, "Welcome to Shrink-It!")
	fmt.Fprintln(c.out, "This program uses the Huffman coding algorithm for compression.")
	fmt.Fprintln(c.out, "Any type of file can be encoded using a Huffman code.")
	fmt.Fprintln(c.out, "Decompressing the result will faithfully reproduce the original.")
}

func (c *Console) prompt(msg string) (string, bool) {
	fmt.Fprint(c.out, msg)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// yesOrNo는 y/n 이 나올 때까지 다시 물어봐요
func (c *Console) yesOrNo(msg string) bool {
	for {
		ans, ok := c.prompt(msg)
		if !ok {
			return false
		}
		switch strings.ToLower(ans) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		fmt.Fprintln(c.out, "Please answer y or n.")
	}
}

// OutputName derives the output file name: x → x.huf when compressing,
// dir/x.huf → dir/unhuf.x when decompressing.
func OutputName(in string, compressing bool) string {
	if compressing {
		return in + compressedExt
	}
	dir, base := filepath.Split(in)
	root := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, decompressedPre+root)
}

func (c *Console) files(compressing bool) (in, out string, ok bool) {
	what := "compress"
	if !compressing {
		what = "decompress"
	}
	in, ok = c.prompt("Enter name of file to " + what + ": ")
	if !ok || in == "" {
		fmt.Fprintln(c.out, "Operation canceled.")
		return "", "", false
	}
	out = OutputName(in, compressing)
	fmt.Fprintln(c.out, "Writing file:", out)
	if fileio.Exists(out) && !c.yesOrNo("File already exists. Overwrite? (y/n) ") {
		fmt.Fprintln(c.out, "Operation canceled.")
		return "", "", false
	}
	return in, out, true
}

func (c *Console) compressFile() {
	in, out, ok := c.files(true)
	if !ok {
		return
	}
	if err := c.compress(in, out); err != nil {
		c.log.Errorf("compress %s: %v", in, err)
		fmt.Fprintln(c.out, "Unable to write compressed file:", err)
	}
}

func (c *Console) compress(in, out string) error {
	text, err := fileio.ReadFile(in)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Reading %d bytes from %s\nCompressing ...\n", len(text), in)
	data, err := huffman.Compress(text)
	if err != nil {
		return err
	}
	raw, err := data.MarshalBinary()
	if err != nil {
		return err
	}
	if err := fileio.WriteFile(out, raw); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Wrote %d compressed bytes to %s\n", len(raw), out)
	c.log.Infof("compressed %s: %d -> %d bytes", in, len(text), len(raw))
	return nil
}

func (c *Console) decompressFile() {
	in, out, ok := c.files(false)
	if !ok {
		return
	}
	if err := c.decompress(in, out); err != nil {
		c.log.Errorf("decompress %s: %v", in, err)
		fmt.Fprintln(c.out, "Unable to decompress:", err)
	}
}

func (c *Console) decompress(in, out string) error {
	raw, err := fileio.ReadFile(in)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Reading %d bytes from %s\nDecompressing ...\n", len(raw), in)
	var data huffman.EncodedData
	if err := data.UnmarshalBinary(raw); err != nil {
		return err
	}
	text, err := huffman.Decompress(&data)
	if err != nil {
		return err
	}
	if err := fileio.WriteFile(out, text); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Wrote %d decompressed bytes to %s\n", len(text), out)
	c.log.Infof("decompressed %s: %d -> %d bytes", in, len(raw), len(text))
	return nil
}
