package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func createSID(t *testing.T, dir, rel string) string {
	t.Helper()
	buf := make([]byte, 0x7C)
	copy(buf, "PSID")
	binary.BigEndian.PutUint16(buf[0x04:], 2)
	binary.BigEndian.PutUint16(buf[0x06:], 0x7C)
	binary.BigEndian.PutUint16(buf[0x08:], 0x1000)
	binary.BigEndian.PutUint16(buf[0x0E:], 1)
	copy(buf[0x16:], "Commando")
	buf = append(buf, 0x60)

	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestHeaderCommand(t *testing.T) {
	dir := t.TempDir()
	path := createSID(t, dir, "Commando.sid")
	prg := filepath.Join(dir, "Commando.prg")

	out, err := run(t, "header", "--prg", prg, path)
	if err != nil {
		t.Fatalf("header: %v\n%s", err, out)
	}
	if !strings.Contains(out, "name       : Commando") {
		t.Errorf("output missing name:\n%s", out)
	}

	data, err := os.ReadFile(prg)
	if err != nil {
		t.Fatal(err)
	}
	if want := []byte{0x00, 0x10, 0x60}; !bytes.Equal(data, want) {
		t.Errorf("program = % x, want % x", data, want)
	}
}

func TestSTILCommand(t *testing.T) {
	root := t.TempDir()
	createSID(t, root, "MUSICIANS/H/Hubbard_Rob/Commando.sid")
	stil := "/MUSICIANS/H/Hubbard_Rob/Commando.sid\n  TITLE: Commando (1:30)\n"
	docs := filepath.Join(root, "DOCUMENTS")
	if err := os.MkdirAll(docs, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(docs, "STIL.txt"), []byte(stil), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "--root", root, "stil", "/MUSICIANS/H/Hubbard_Rob/Commando.sid")
	if err != nil {
		t.Fatalf("stil: %v\n%s", err, out)
	}
	for _, want := range []string{"{File: /MUSICIANS/H/Hubbard_Rob/Commando.sid}", "Commando", "{timestamp} 1:30"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if _, err := run(t, "--root", root, "stil", "/MUSICIANS/Z/Missing.sid"); err == nil {
		t.Error("expected error for missing entry")
	}
}
