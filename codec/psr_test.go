package codec

import (
	"bytes"
	"errors"
	"testing"
)

func TestPSR_Roundtrip(t *testing.T) {
	src := testPixmap(t, 33, 21, 77)

	var buf bytes.Buffer
	if err := EncodePSR(&buf, src); err != nil {
		t.Fatal(err)
	}

	got, err := DecodePSR(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if got.Width() != 33 || got.Height() != 21 {
		t.Fatalf("dimensions = %dx%d, want 33x21", got.Width(), got.Height())
	}
	if !bytes.Equal(got.Data(), src.Data()) {
		t.Error("PSR roundtrip changed pixel data")
	}
}

func TestPSR_ThroughGenericDecode(t *testing.T) {
	src := testPixmap(t, 5, 4, 3)

	var buf bytes.Buffer
	if err := Encode(&buf, src, FormatPSR, nil); err != nil {
		t.Fatal(err)
	}

	got, format, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if format != FormatPSR {
		t.Errorf("format = %q, want psr", format)
	}
	if !bytes.Equal(got.Data(), src.Data()) {
		t.Error("PSR data changed through generic Decode")
	}
}

func TestPSR_BadMagic(t *testing.T) {
	_, err := DecodePSR(bytes.NewReader([]byte("NOPE00000000")))
	if !errors.Is(err, ErrInvalidPSR) {
		t.Errorf("error = %v, want ErrInvalidPSR", err)
	}
}

func TestPSR_TruncatedHeader(t *testing.T) {
	_, err := DecodePSR(bytes.NewReader([]byte("PSR1\x00")))
	if !errors.Is(err, ErrInvalidPSR) {
		t.Errorf("error = %v, want ErrInvalidPSR", err)
	}
}

func TestPSR_BadDimensions(t *testing.T) {
	// Valid magic, zero width.
	header := append([]byte(psrMagic), 0, 0, 0, 0, 0, 0, 0, 1)
	_, err := DecodePSR(bytes.NewReader(header))
	if !errors.Is(err, ErrInvalidPSR) {
		t.Errorf("zero width: error = %v, want ErrInvalidPSR", err)
	}

	// Dimensions over the allocation cap.
	huge := append([]byte(psrMagic), 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF)
	_, err = DecodePSR(bytes.NewReader(huge))
	if !errors.Is(err, ErrInvalidPSR) {
		t.Errorf("huge dimensions: error = %v, want ErrInvalidPSR", err)
	}
}

func TestPSR_TruncatedPixels(t *testing.T) {
	src := testPixmap(t, 10, 10, 13)
	var buf bytes.Buffer
	if err := EncodePSR(&buf, src); err != nil {
		t.Fatal(err)
	}

	cut := buf.Bytes()[:buf.Len()/2]
	if _, err := DecodePSR(bytes.NewReader(cut)); !errors.Is(err, ErrInvalidPSR) {
		t.Errorf("truncated stream: error = %v, want ErrInvalidPSR", err)
	}
}

func TestEncodePSR_EmptyImage(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePSR(&buf, nil); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("error = %v, want ErrEmptyImage", err)
	}
}
