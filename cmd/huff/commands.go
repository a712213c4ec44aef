package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	huffman "github.com/masonwr/huffman-encoding"
)

const containerExt = ".huff"

// forEachFile runs fn on every file with at most opts.jobs running at once.
// After the first failure no further files are started.
func forEachFile(files []string, opts options, fn func(i int, name string) error) error {
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(opts.jobs)
	for i, name := range files {
		g.Go(func() error {
			// Check if another file already failed
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			if err := fn(i, name); err != nil {
				return errors.Wrap(err, name)
			}
			return nil
		})
	}
	return g.Wait()
}

// decodedName maps a container path back to the path of the original file.
func decodedName(name string) string {
	if strings.HasSuffix(name, containerExt) && len(name) > len(containerExt) {
		return strings.TrimSuffix(name, containerExt)
	}
	return name + ".out"
}

// createOutput opens dst for writing. Unless force is set an existing file is
// an error.
func createOutput(dst string, force bool) (*os.File, error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(dst, flags, 0o644)
	if os.IsExist(err) {
		return nil, errors.Errorf("%s already exists (use --force to overwrite)", dst)
	}
	return f, err
}

// convert runs fn from src into dst and removes dst if anything fails.
func convert(src, dst string, force bool, fn func(in *os.File, out io.Writer) error) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := createOutput(dst, force)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(dst)
		}
	}()
	return fn(in, out)
}

func encodeFiles(files []string, opts options) error {
	enc := huffman.NewEncoder()
	return forEachFile(files, opts, func(_ int, name string) error {
		dst := name + containerExt
		err := convert(name, dst, opts.force, func(in *os.File, out io.Writer) error {
			return enc.Encode(in, out)
		})
		if err != nil {
			return err
		}
		log.Infof("%s -> %s", name, dst)
		return nil
	})
}

func decodeFiles(files []string, opts options) error {
	dec := huffman.NewDecoder(huffman.WithTreeCache(len(files)))
	return forEachFile(files, opts, func(_ int, name string) error {
		dst := decodedName(name)
		err := convert(name, dst, opts.force, func(in *os.File, out io.Writer) error {
			return dec.Decode(in, out)
		})
		if err != nil {
			return err
		}
		log.Infof("%s -> %s", name, dst)
		return nil
	})
}

type fileStats struct {
	name  string
	stats huffman.Stats
	zstd  int
}

func statsFiles(files []string, opts options, stdout io.Writer) error {
	zenc, err := zstd.NewWriter(nil)
	if err != nil {
		return errors.Wrap(err, "create zstd encoder")
	}
	defer zenc.Close()

	results := make([]fileStats, len(files))
	err = forEachFile(files, opts, func(i int, name string) error {
		data, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		code, err := huffman.TrainCode(data)
		if err != nil {
			return err
		}
		results[i] = fileStats{
			name:  name,
			stats: code.Stats(),
			zstd:  len(zenc.EncodeAll(data, nil)),
		}
		return nil
	})
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English) // For commas between thousands
	for _, r := range results {
		writeStats(p, stdout, r)
	}
	return nil
}

func writeStats(p *message.Printer, w io.Writer, r fileStats) {
	s := r.stats
	p.Fprintf(w, "%s\n", filepath.Clean(r.name))
	p.Fprintf(w, "  input    %d bytes, %d distinct symbols\n", s.InputBytes, s.Symbols)
	p.Fprintf(w, "  huffman  %d bytes (%d header + %d payload), ratio %.2fx\n",
		s.EncodedBytes(), s.HeaderBytes, s.PayloadBytes(), s.Ratio())
	p.Fprintf(w, "  codes    avg %.3f bits, max %d bits, entropy %.3f bits/byte\n",
		s.AvgCodeLen, s.MaxCodeLen, s.Entropy)
	zratio := 0.0
	if r.zstd > 0 {
		zratio = float64(s.InputBytes) / float64(r.zstd)
	}
	p.Fprintf(w, "  zstd     %d bytes, ratio %.2fx\n", r.zstd, zratio)
}
