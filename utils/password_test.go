package utils

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "correct-horse" {
		t.Fatal("hash equals the plaintext")
	}
	if !CheckPasswordHash("correct-horse", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Error("wrong password accepted")
	}
}

func TestCreateDefaultPassword(t *testing.T) {
	first, err := CreateDefaultPassword()
	if err != nil {
		t.Fatalf("CreateDefaultPassword: %v", err)
	}
	second, err := CreateDefaultPassword()
	if err != nil {
		t.Fatalf("CreateDefaultPassword: %v", err)
	}
	if first == second {
		t.Error("two generated passwords produced identical hashes")
	}
}
