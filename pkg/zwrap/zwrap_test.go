// Test Zwrap
package zwrap_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/andrew-torda/seqbench/brokenio"
	"github.com/andrew-torda/seqbench/pkg/zwrap"
)

// both of these are "andrewsays", but the first is compressed.
type gztest struct {
	data    []byte
	gzipped bool
}

var gztests = []gztest{
	{[]byte{
		0x1f, 0x8b, 0x08, 0x00, 0xb6, 0xf1, 0xa0, 0x5b, 0x00, 0x03,
		0x4b, 0xcc, 0x4b, 0x29, 0x4a, 0x2d, 0x2f, 0x4e, 0xac, 0x2c,
		0xce, 0x48, 0xcd, 0xc9, 0xc9, 0x07, 0x00, 0x44, 0xa8, 0x66,
		0x89, 0x0f, 0x00, 0x00, 0x00},
		true,
	},
	{[]byte{
		0x61, 0x6e, 0x64, 0x72, 0x65, 0x77, 0x73, 0x61,
		0x79, 0x73, 0x68, 0x65, 0x6c, 0x6c, 0x6f, 0x0a},
		false,
	},
}

func TestIsGzip(t *testing.T) {
	for _, x := range gztests {
		if zwrap.IsGzip(x.data) != x.gzipped {
			t.Errorf("IsGzip wrong for compressed = %v", x.gzipped)
		}
	}
	if zwrap.IsGzip(nil) {
		t.Error("empty input called gzip")
	}
}

func TestWrap(t *testing.T) {
	b := make([]byte, 256)
	for _, x := range gztests {
		tmpr, err := zwrap.Wrap(io.NopCloser(bytes.NewReader(x.data)))
		if err != nil {
			if x.gzipped {
				t.Error("Fail on correctly gzipped data", err)
			}
			continue
		} else if !x.gzipped {
			t.Error("Fail on not compressed data")
		}
		if n, err := tmpr.Read(b); n < 5 {
			t.Errorf("Short read of %d bytes, %s", n, err)
		}
		if string(b[:10]) != "andrewsays" {
			t.Errorf("wrong string: %s", b[:10])
		}
		if err := tmpr.Close(); err != nil {
			t.Errorf("Error closing: %s", err)
		}
	}
}

func TestWrapReadError(t *testing.T) {
	brkn := brokenio.NewReader(io.NopCloser(bytes.NewReader(gztests[0].data)), 1)
	if _, err := zwrap.Wrap(brkn); !errors.Is(err, brokenio.ErrBroken) {
		t.Fatal("expected read failure, got", err)
	}
}

// TestRoundTrip writes through WrapWriter to a file and reads it back.
func TestRoundTrip(t *testing.T) {
	const s = ">ONE Homo sapiens alu\nGGCCGGGCGCGGTGGCTCAC\n"
	for _, compress := range []bool{false, true} {
		fp, err := os.CreateTemp("", "_del_me_testing")
		if err != nil {
			t.Fatal(err)
		}
		defer os.Remove(fp.Name())
		w := zwrap.WrapWriter(fp, compress)
		if _, err := io.WriteString(w, s); err != nil {
			t.Fatal(err)
		}
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}
		raw, err := os.ReadFile(fp.Name())
		if err != nil {
			t.Fatal(err)
		}
		if zwrap.IsGzip(raw) != compress {
			t.Fatal("compression flag not honoured", compress)
		}
		got := raw
		if compress {
			r, err := zwrap.Wrap(io.NopCloser(bytes.NewReader(raw)))
			if err != nil {
				t.Fatal(err)
			}
			if got, err = io.ReadAll(r); err != nil {
				t.Fatal(err)
			}
			r.Close()
		}
		if string(got) != s {
			t.Fatalf("compress %v: got %q", compress, got)
		}
	}
}
