package dimacs

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/xDarkicex/cnfxnf/core"
)

// HasSuffix reports whether path ends in one of the recognized
// compression suffixes, mirroring original_source/cnf2xnf/cnf2xnf.c's
// has_suffix check for ".gz"/".bz2"/".xz".
func HasSuffix(path string) (tool string, ok bool) {
	switch {
	case strings.HasSuffix(path, ".gz"):
		return "gzip", true
	case strings.HasSuffix(path, ".bz2"):
		return "bzip2", true
	case strings.HasSuffix(path, ".xz"):
		return "xz", true
	default:
		return "", false
	}
}

// OpenInput opens path for reading, spawning a decompression
// subprocess for a recognized compressed suffix exactly as the
// original tool's read_pipe does via popen("<tool> -c -d %s"); "-" or
// an empty path means stdin. Intentionally shells out rather than
// using compress/gzip et al. — see DESIGN.md.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	if tool, ok := HasSuffix(path); ok {
		return pipeFrom(tool, "-c", "-d", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, core.NewParseError("open", 0, "can not read '%s'", path)
	}
	return f, nil
}

// OpenOutput opens path for writing, spawning a compression subprocess
// for a recognized compressed suffix exactly as write_pipe does via
// popen("<tool> -c > %s"); "-" or an empty path means stdout.
func OpenOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	if tool, ok := HasSuffix(path); ok {
		return pipeTo(tool, path)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, core.NewParseError("open", 0, "can not write '%s'", path)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// pipeReader wraps a subprocess's stdout; Close waits for the process
// to exit so a truncated decompression surfaces as an error.
type pipeReader struct {
	io.ReadCloser
	cmd *exec.Cmd
}

func (p *pipeReader) Close() error {
	_ = p.ReadCloser.Close()
	return p.cmd.Wait()
}

func pipeFrom(tool string, args ...string) (io.ReadCloser, error) {
	cmd := exec.Command(tool, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("dimacs: spawning %s: %w", tool, err)
	}
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("dimacs: spawning %s: %w", tool, err)
	}
	return &pipeReader{ReadCloser: stdout, cmd: cmd}, nil
}

func pipeTo(tool, outPath string) (io.WriteCloser, error) {
	out, err := os.Create(outPath)
	if err != nil {
		return nil, core.NewParseError("open", 0, "can not write '%s'", outPath)
	}
	cmd := exec.Command(tool, "-c")
	cmd.Stdout = out
	cmd.Stderr = os.Stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		out.Close()
		return nil, fmt.Errorf("dimacs: spawning %s: %w", tool, err)
	}
	if err := cmd.Start(); err != nil {
		out.Close()
		return nil, fmt.Errorf("dimacs: spawning %s: %w", tool, err)
	}
	return &pipeCloser{WriteCloser: stdin, cmd: cmd, file: out}, nil
}

// pipeCloser wraps a compression subprocess's stdin; Close closes the
// pipe (EOF to the subprocess), waits for it to finish writing, and
// closes the underlying output file.
type pipeCloser struct {
	io.WriteCloser
	cmd  *exec.Cmd
	file *os.File
}

func (p *pipeCloser) Close() error {
	_ = p.WriteCloser.Close()
	err := p.cmd.Wait()
	if cerr := p.file.Close(); err == nil {
		err = cerr
	}
	return err
}
