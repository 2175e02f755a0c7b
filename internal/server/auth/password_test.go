package auth

import "testing"

func TestHashAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	const plain = "s3cret-passw0rd"

	h1, err := HashPassword(plain)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword(plain)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	// salted: same plaintext, different digests
	if h1 == h2 {
		t.Fatalf("two hashes of the same password are identical")
	}

	if !VerifyPassword(plain, h1) {
		t.Fatalf("VerifyPassword(plain, h1) = false, want true")
	}
	if !VerifyPassword(plain, h2) {
		t.Fatalf("VerifyPassword(plain, h2) = false, want true")
	}
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("correct")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if VerifyPassword("wrong", h) {
		t.Fatalf("VerifyPassword accepted a wrong password")
	}
	if VerifyPassword("", h) {
		t.Fatalf("VerifyPassword accepted an empty password")
	}
}

func TestVerifyPassword_GarbageDigest(t *testing.T) {
	t.Parallel()

	if VerifyPassword("anything", "not-a-bcrypt-digest") {
		t.Fatalf("VerifyPassword accepted a garbage digest")
	}
}
