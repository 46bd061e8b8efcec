package export

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/icza/mjpeg"
)

const jpegQuality = 90

type frameWriter interface {
	WriteFrame(i int, img *image.RGBA) error
	Files() []string
	Close() error
}

func newFrameWriter(format, dir string, width, height, fps int) (frameWriter, error) {
	switch format {
	case FormatPNG, "":
		return &pngWriter{dir: dir}, nil
	case FormatMJPEG:
		path := filepath.Join(dir, VideoFile)
		aw, err := mjpeg.New(path, int32(width), int32(height), int32(fps))
		if err != nil {
			return nil, fmt.Errorf("create video %s: %w", path, err)
		}
		return &mjpegWriter{aw: aw}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrFormat, format)
}

// FrameName is the file name of frame i in a PNG export.
func FrameName(i int) string {
	return fmt.Sprintf("frame_%05d.png", i)
}

type pngWriter struct {
	dir   string
	files []string
	enc   png.Encoder
}

func (w *pngWriter) WriteFrame(i int, img *image.RGBA) error {
	name := FrameName(i)
	f, err := os.Create(filepath.Join(w.dir, name))
	if err != nil {
		return err
	}
	if err := w.enc.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	w.files = append(w.files, name)
	return nil
}

func (w *pngWriter) Files() []string { return w.files }

func (w *pngWriter) Close() error { return nil }

type mjpegWriter struct {
	aw  mjpeg.AviWriter
	buf bytes.Buffer
}

func (w *mjpegWriter) WriteFrame(_ int, img *image.RGBA) error {
	w.buf.Reset()
	if err := jpeg.Encode(&w.buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return err
	}
	return w.aw.AddFrame(w.buf.Bytes())
}

func (w *mjpegWriter) Files() []string { return []string{VideoFile} }

func (w *mjpegWriter) Close() error { return w.aw.Close() }
