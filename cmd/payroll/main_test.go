package main

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestRootCmd_Wiring(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"console", "serve", "operator"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("expected %s subcommand, got %v (%v)", name, cmd, err)
		}
	}

	if f := root.PersistentFlags().Lookup("seed"); f == nil || f.DefValue != "false" {
		t.Fatalf("expected --seed flag defaulting to false, got %+v", f)
	}

	console, _, _ := root.Find([]string{"console"})
	if f := console.Flags().Lookup("log-level"); f == nil || f.DefValue != "warn" {
		t.Fatalf("expected console --log-level defaulting to warn, got %+v", f)
	}
}

func TestOperatorHash(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"operator", "hash", "--password", "s3cret"})

	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	hash := strings.TrimSpace(out.String())
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")); err != nil {
		t.Fatalf("printed hash does not match password: %v", err)
	}
}

func TestHashPassword_RejectsEmpty(t *testing.T) {
	if _, err := hashPassword(""); err == nil {
		t.Fatal("expected error for empty password")
	}
}
