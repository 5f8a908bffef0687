package helpers

import (
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func TestGravatarURL(t *testing.T) {
	got := GravatarURL("ada@example.com", DefaultAvatarOptions())
	want := "https://www.gravatar.com/avatar/3e3417d7ef77d5932a6734b916515ed5?s=200&r=g&d=mm"
	if got != want {
		t.Fatalf("GravatarURL = %q, want %q", got, want)
	}
}

func TestGravatarURLDeterministic(t *testing.T) {
	a := GravatarURL("ada@example.com", DefaultAvatarOptions())
	b := GravatarURL("ada@example.com", DefaultAvatarOptions())
	if a != b {
		t.Fatalf("not deterministic: %q != %q", a, b)
	}
	if c := GravatarURL("  ADA@Example.com ", DefaultAvatarOptions()); c != a {
		t.Fatalf("normalization mismatch: %q != %q", c, a)
	}
	if d := GravatarURL("bob@example.com", DefaultAvatarOptions()); d == a {
		t.Fatal("different emails produced the same url")
	}
}

func TestGravatarURLKnownDigest(t *testing.T) {
	// Reference value from the Gravatar docs.
	got := GravatarURL("MyEmailAddress@example.com ", AvatarOptions{})
	want := "https://www.gravatar.com/avatar/0bc83cb571cd1c50ba6f3e8a78ef1346"
	if got != want {
		t.Fatalf("GravatarURL = %q, want %q", got, want)
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret1", 10)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash equals plaintext")
	}
	if cost, _ := bcrypt.Cost([]byte(hash)); cost != 10 {
		t.Fatalf("cost = %d, want 10", cost)
	}
	if !CompareHashAndPassword(hash, "secret1") {
		t.Fatal("hash does not verify")
	}
	if CompareHashAndPassword(hash, "secret2") {
		t.Fatal("wrong password verified")
	}

	again, _ := HashPassword("secret1", 10)
	if again == hash {
		t.Fatal("expected a fresh salt per call")
	}
}

func TestHashPasswordLongMultibyte(t *testing.T) {
	long := strings.Repeat("é", 40) // 80 bytes
	hash, err := HashPassword(long, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CompareHashAndPassword(hash, long) {
		t.Fatal("long password does not verify")
	}
	// only the first 72 bytes are significant
	if !CompareHashAndPassword(hash, strings.Repeat("é", 36)) {
		t.Fatal("72-byte prefix does not verify")
	}
	if CompareHashAndPassword(hash, strings.Repeat("é", 35)) {
		t.Fatal("shorter prefix verified")
	}
}

func TestHashPasswordInvalidCostFallsBack(t *testing.T) {
	hash, err := HashPassword("secret1", 99)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if cost, _ := bcrypt.Cost([]byte(hash)); cost != bcrypt.DefaultCost {
		t.Fatalf("cost = %d, want %d", cost, bcrypt.DefaultCost)
	}
}

func TestJWTSignAndParse(t *testing.T) {
	m := NewJWTManager("s3cret", 100*time.Hour)
	tok, exp, err := m.Sign("user-1")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if d := time.Until(exp); d < 99*time.Hour || d > 100*time.Hour {
		t.Fatalf("expiry %v not ~100h out", d)
	}
	claims, err := m.Parse(tok)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.User.ID != "user-1" {
		t.Fatalf("user id = %q", claims.User.ID)
	}

	other := NewJWTManager("different", time.Hour)
	if _, err := other.Parse(tok); err == nil {
		t.Fatal("token verified with the wrong secret")
	}
}

func TestJWTSignWithoutSecret(t *testing.T) {
	if _, _, err := NewJWTManager("", time.Hour).Sign("user-1"); err == nil {
		t.Fatal("expected error without secret")
	}
}

func TestJWTExpired(t *testing.T) {
	m := NewJWTManager("s3cret", -time.Minute)
	tok, _, err := m.Sign("user-1")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if _, err := m.Parse(tok); err == nil {
		t.Fatal("expired token accepted")
	}
}
