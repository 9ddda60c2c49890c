package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewManager("secret", time.Hour)

	token, err := m.GenerateToken("u1", "ann@x.com", "Ann")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := m.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	if claims.UserID != "u1" {
		t.Fatalf("got sub %q, want u1", claims.UserID)
	}
	if claims.Email != "ann@x.com" || claims.Name != "Ann" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", time.Hour).GenerateToken("u1", "ann@x.com", "Ann")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := NewManager("secret-b", time.Hour).VerifyToken(token); err == nil {
		t.Fatal("token signed with another secret verified")
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	m := NewManager("secret", -time.Minute)

	token, err := m.GenerateToken("u1", "ann@x.com", "Ann")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := m.VerifyToken(token); err == nil {
		t.Fatal("expired token verified")
	}
}

func TestVerifyToken_RejectsNonHMAC(t *testing.T) {
	m := NewManager("secret", time.Hour)

	// alg=none is the classic downgrade attempt
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "u1"})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := m.VerifyToken(raw); err == nil {
		t.Fatal("unsigned token verified")
	}
}

func TestVerifyToken_Garbage(t *testing.T) {
	m := NewManager("secret", time.Hour)

	for _, raw := range []string{"", "abc", "a.b.c"} {
		if _, err := m.VerifyToken(raw); err == nil {
			t.Fatalf("garbage token %q verified", raw)
		}
	}
}
