package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("pw123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "pw123" {
		t.Fatalf("hash must not equal the plaintext")
	}

	ok, err := h.Verify("pw123", hash)
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}

	ok, err = h.Verify("wrong", hash)
	if err != nil {
		t.Fatalf("mismatch must not be an error, got %v", err)
	}
	if ok {
		t.Fatalf("expected mismatch")
	}
}

func TestBcryptHasher_SaltsEachHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	a, _ := h.Hash("same")
	b, _ := h.Hash("same")
	if a == b {
		t.Fatalf("expected distinct hashes for the same password")
	}
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	ok, err := h.Verify("pw", "$2a$garbage")
	if err == nil {
		t.Fatalf("expected an error for a malformed hash")
	}
	if ok {
		t.Fatalf("malformed hash must never verify")
	}
}

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	if got := NewBcryptHasher(0).cost; got != DefaultBcryptCost {
		t.Fatalf("expected default cost %d, got %d", DefaultBcryptCost, got)
	}
	if got := NewBcryptHasher(bcrypt.MaxCost + 1).cost; got != DefaultBcryptCost {
		t.Fatalf("expected default cost for out-of-range input, got %d", got)
	}
}
