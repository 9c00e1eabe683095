package utils

import (
	"testing"
	"time"

	"photo-share-server/internal/config"
)

func TestMain(m *testing.M) {
	config.InitConfig("testdata_no_such_dir")
	m.Run()
}

func TestLoginToken_RoundTrip(t *testing.T) {
	token, err := GenerateLoginToken(123, "alice", time.Hour)
	if err != nil {
		t.Fatalf("GenerateLoginToken error: %v", err)
	}
	claims, err := ParseLoginToken(token)
	if err != nil {
		t.Fatalf("ParseLoginToken error: %v", err)
	}
	if claims.ID != 123 || claims.Username != "alice" || claims.Type != "login" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseLoginToken_Expired(t *testing.T) {
	token, err := GenerateLoginToken(1, "alice", -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateLoginToken error: %v", err)
	}
	_, err = ParseLoginToken(token)
	if err == nil {
		t.Fatalf("expected expired token error")
	}
}

func TestParseLoginToken_Garbage(t *testing.T) {
	if _, err := ParseLoginToken("not.a.token"); err == nil {
		t.Fatalf("expected parse error")
	}
}
