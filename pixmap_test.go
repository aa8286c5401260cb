package pixsort

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewPixmap(t *testing.T) {
	pm, err := NewPixmap(10, 7)
	if err != nil {
		t.Fatalf("NewPixmap(10, 7) error: %v", err)
	}
	if pm.Width() != 10 || pm.Height() != 7 {
		t.Errorf("dimensions = %dx%d, want 10x7", pm.Width(), pm.Height())
	}
	if len(pm.Data()) != 10*7*4 {
		t.Errorf("len(Data()) = %d, want %d", len(pm.Data()), 10*7*4)
	}
}

func TestNewPixmap_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 5}, {5, -1}, {0, 0}} {
		_, err := NewPixmap(dims[0], dims[1])
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewPixmap(%d, %d) error = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
}

func TestPixmap_SetGetRGBA(t *testing.T) {
	pm, _ := NewPixmap(4, 4)
	pm.SetRGBA(2, 3, 10, 20, 30, 40)

	r, g, b, a := pm.RGBA(2, 3)
	if r != 10 || g != 20 || b != 30 || a != 40 {
		t.Errorf("RGBA(2, 3) = (%d, %d, %d, %d), want (10, 20, 30, 40)", r, g, b, a)
	}

	// Verify raw layout: index = (y*width + x) * 4.
	i := (3*4 + 2) * 4
	data := pm.Data()
	if data[i] != 10 || data[i+1] != 20 || data[i+2] != 30 || data[i+3] != 40 {
		t.Error("raw data does not match row-major RGBA layout")
	}
}

func TestPixmap_OutOfBounds(t *testing.T) {
	pm, _ := NewPixmap(4, 4)
	before := make([]uint8, len(pm.Data()))
	copy(before, pm.Data())

	for _, c := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}} {
		pm.SetRGBA(c[0], c[1], 255, 255, 255, 255)
		if r, g, b, a := pm.RGBA(c[0], c[1]); r != 0 || g != 0 || b != 0 || a != 0 {
			t.Errorf("RGBA(%d, %d) = (%d,%d,%d,%d), want zeros", c[0], c[1], r, g, b, a)
		}
	}

	for i := range before {
		if pm.Data()[i] != before[i] {
			t.Fatal("out-of-bounds SetRGBA modified pixel data")
		}
	}
}

func TestPixmap_Clone(t *testing.T) {
	pm, _ := NewPixmap(3, 3)
	pm.SetRGBA(1, 1, 9, 8, 7, 6)

	cl := pm.Clone()
	if cl.Width() != 3 || cl.Height() != 3 {
		t.Fatalf("clone dimensions = %dx%d, want 3x3", cl.Width(), cl.Height())
	}
	if r, _, _, _ := cl.RGBA(1, 1); r != 9 {
		t.Error("clone did not copy pixel data")
	}

	// Mutating the clone must not touch the original.
	cl.SetRGBA(1, 1, 0, 0, 0, 0)
	if r, _, _, _ := pm.RGBA(1, 1); r != 9 {
		t.Error("mutating clone modified the original")
	}
}

func TestFromImage_NRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	img.SetNRGBA(2, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 25})

	pm := FromImage(img)
	if pm.Width() != 3 || pm.Height() != 2 {
		t.Fatalf("dimensions = %dx%d, want 3x2", pm.Width(), pm.Height())
	}
	if r, g, b, a := pm.RGBA(0, 0); r != 1 || g != 2 || b != 3 || a != 4 {
		t.Errorf("pixel (0,0) = (%d,%d,%d,%d), want (1,2,3,4)", r, g, b, a)
	}
	if r, g, b, a := pm.RGBA(2, 1); r != 200 || g != 100 || b != 50 || a != 25 {
		t.Errorf("pixel (2,1) = (%d,%d,%d,%d), want (200,100,50,25)", r, g, b, a)
	}
}

func TestFromImage_SubImage(t *testing.T) {
	// Sub-images have non-zero bounds and a stride wider than the view.
	base := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	base.SetNRGBA(3, 3, color.NRGBA{R: 77, A: 255})

	sub := base.SubImage(image.Rect(2, 2, 6, 6)).(*image.NRGBA)
	pm := FromImage(sub)
	if pm.Width() != 4 || pm.Height() != 4 {
		t.Fatalf("dimensions = %dx%d, want 4x4", pm.Width(), pm.Height())
	}
	if r, _, _, a := pm.RGBA(1, 1); r != 77 || a != 255 {
		t.Errorf("pixel (1,1) = r=%d a=%d, want r=77 a=255", r, a)
	}
}

func TestFromImage_Generic(t *testing.T) {
	// Non-NRGBA sources go through the generic conversion path.
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.SetGray(0, 0, color.Gray{Y: 200})
	img.SetGray(1, 1, color.Gray{Y: 30})

	pm := FromImage(img)
	if r, g, b, a := pm.RGBA(0, 0); r != 200 || g != 200 || b != 200 || a != 255 {
		t.Errorf("pixel (0,0) = (%d,%d,%d,%d), want (200,200,200,255)", r, g, b, a)
	}
	if r, _, _, _ := pm.RGBA(1, 1); r != 30 {
		t.Errorf("pixel (1,1) r = %d, want 30", r)
	}
}

func TestToImage_Roundtrip(t *testing.T) {
	pm, _ := NewPixmap(5, 4)
	for y := range 4 {
		for x := range 5 {
			pm.SetRGBA(x, y, uint8(x*40), uint8(y*60), uint8(x+y), uint8(255-x))
		}
	}

	back := FromImage(pm.ToImage())
	if back.Width() != 5 || back.Height() != 4 {
		t.Fatalf("roundtrip dimensions = %dx%d, want 5x4", back.Width(), back.Height())
	}
	for i, v := range pm.Data() {
		if back.Data()[i] != v {
			t.Fatalf("roundtrip data mismatch at byte %d: got %d, want %d", i, back.Data()[i], v)
		}
	}
}

func TestPixmap_Validate(t *testing.T) {
	var nilPm *Pixmap
	if err := nilPm.validate(); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("nil pixmap: error = %v, want ErrInvalidDimensions", err)
	}

	bad := &Pixmap{width: 0, height: 5}
	if err := bad.validate(); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero width: error = %v, want ErrInvalidDimensions", err)
	}

	short := &Pixmap{width: 4, height: 4, data: make([]uint8, 10)}
	if err := short.validate(); !errors.Is(err, ErrBufferSize) {
		t.Errorf("short buffer: error = %v, want ErrBufferSize", err)
	}

	ok, _ := NewPixmap(4, 4)
	if err := ok.validate(); err != nil {
		t.Errorf("valid pixmap: error = %v, want nil", err)
	}
}
