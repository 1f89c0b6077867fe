package digest_test

import (
	"testing"

	"protmotif/internal/digest"
)

func TestSequence_StableAndDistinct(t *testing.T) {
	a := digest.Sequence("MKTAYIAKQR")
	if a != digest.Sequence("MKTAYIAKQR") {
		t.Fatal("checksum not stable")
	}
	if len(a) != 2*digest.Size {
		t.Fatalf("checksum length %d, want %d", len(a), 2*digest.Size)
	}
	if a == digest.Sequence("MKTAYIAKQS") {
		t.Fatal("different sequences share a checksum")
	}
}

func TestETag(t *testing.T) {
	if got := digest.ETag("abc"); got != `"abc"` {
		t.Fatalf("ETag = %s", got)
	}
}
