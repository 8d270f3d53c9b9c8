package ui

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Screenshotter writes the current framebuffer to timestamped PNG files.
type Screenshotter struct {
	Dir    string
	Prefix string
	now    func() time.Time
}

// NewScreenshotter creates a screenshotter writing into dir.
func NewScreenshotter(dir, prefix string) *Screenshotter {
	return &Screenshotter{Dir: dir, Prefix: prefix, now: time.Now}
}

// Capture reads the front buffer at the display's framebuffer size. Call it
// at the start of a frame so the previous frame is what gets saved.
func (s *Screenshotter) Capture() (string, error) {
	io := imgui.CurrentIO()
	size := io.DisplaySize()
	scale := io.DisplayFramebufferScale()
	width := int(size.X * scale.X)
	height := int(size.Y * scale.Y)
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("invalid framebuffer size %dx%d", width, height)
	}

	pixels := make([]byte, width*height*4)
	gl.ReadBuffer(gl.FRONT)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.ReadBuffer(gl.BACK)

	return s.Write(pixels, width, height)
}

// Write saves bottom-up RGBA pixels as a PNG and returns the file name.
func (s *Screenshotter) Write(pixels []byte, width, height int) (string, error) {
	img, err := flipRGBA(pixels, width, height)
	if err != nil {
		return "", err
	}

	if s.Dir != "" {
		if err := os.MkdirAll(s.Dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	name := s.filename()
	f, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return name, nil
}

func (s *Screenshotter) filename() string {
	now := time.Now
	if s.now != nil {
		now = s.now
	}
	name := fmt.Sprintf("%s_%s.png", s.Prefix, now().Format("2006-01-02_15-04-05.000"))
	if s.Dir != "" {
		name = filepath.Join(s.Dir, name)
	}
	return name
}

// flipRGBA copies GL pixel rows (origin bottom-left) into a top-down image.
func flipRGBA(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	row := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * row
		copy(img.Pix[y*img.Stride:y*img.Stride+row], pixels[src:src+row])
	}
	return img, nil
}
