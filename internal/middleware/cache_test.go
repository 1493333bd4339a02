package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
)

// An over-limit response must be recognizable after the fact: the
// buffer holds only a prefix, but size reports the full body so the
// clipped capture is never written to the cache.
func TestCaptureWriterOverLimit(t *testing.T) {
	tests := []struct {
		name    string
		limit   int64
		writes  []string
		wantBuf string
		want    int64
	}{
		{name: "under limit", limit: 10, writes: []string{"hello"}, wantBuf: "hello", want: 5},
		{name: "single write over limit", limit: 4, writes: []string{"hello world"}, wantBuf: "hell", want: 11},
		{name: "exact fill then more", limit: 5, writes: []string{"hello", " world"}, wantBuf: "hello", want: 11},
		{name: "no limit buffers everything", limit: 0, writes: []string{"hello", " world"}, wantBuf: "hello world", want: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cw := &captureWriter{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK, limit: tt.limit}
			for _, w := range tt.writes {
				if _, err := cw.Write([]byte(w)); err != nil {
					t.Fatalf("Write: %v", err)
				}
			}
			if cw.size != tt.want {
				t.Errorf("size = %d, want %d", cw.size, tt.want)
			}
			if got := cw.buf.String(); got != tt.wantBuf {
				t.Errorf("buffered = %q, want %q", got, tt.wantBuf)
			}
		})
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": {"application/json"}}
	body := []byte(`{"products":[]}`)

	payload, err := encodePayload(http.StatusOK, hdr, body)
	if err != nil {
		t.Fatalf("encodePayload: %v", err)
	}
	status, gotHdr, gotBody, ok := decodePayload(payload)
	if !ok {
		t.Fatal("decodePayload rejected its own encoding")
	}
	if status != http.StatusOK {
		t.Errorf("status = %d, want %d", status, http.StatusOK)
	}
	if got := gotHdr.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}
	if !bytes.Equal(gotBody, body) {
		t.Errorf("body = %q, want %q", gotBody, body)
	}
}

func TestDecodePayloadMalformed(t *testing.T) {
	for _, bs := range [][]byte{nil, []byte("short"), {0, 0, 0, 200, 0, 0, 0, 99}} {
		if _, _, _, ok := decodePayload(bs); ok {
			t.Errorf("decodePayload accepted malformed input %v", bs)
		}
	}
}
