package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatalf("hash equals the plaintext")
	}
	if !CheckPassword(hash, "correct horse battery staple") {
		t.Fatalf("CheckPassword rejected the right password")
	}
	if CheckPassword(hash, "wrong password") {
		t.Fatalf("CheckPassword accepted the wrong password")
	}
}

func TestCheckPasswordGarbageHash(t *testing.T) {
	if CheckPassword("not-a-bcrypt-hash", "anything") {
		t.Fatalf("CheckPassword accepted a garbage hash")
	}
}
