package xmlcodec

import (
	"errors"
	"strings"
	"testing"
)

func TestParseDocument(t *testing.T) {
	root, err := parseDocument([]byte(
		"<Device><Name>MyDevice</Name><Power>3.5</Power></Device>"))
	if err != nil {
		t.Fatalf("parseDocument failed: %v", err)
	}

	if root.name != "Device" {
		t.Errorf("root name = %q, want Device", root.name)
	}
	if len(root.children) != 2 {
		t.Fatalf("root has %d children, want 2", len(root.children))
	}
	if root.children[0].name != "Name" || root.children[0].text != "MyDevice" {
		t.Errorf("first child = %q %q", root.children[0].name, root.children[0].text)
	}
	if root.children[1].name != "Power" || root.children[1].text != "3.5" {
		t.Errorf("second child = %q %q", root.children[1].name, root.children[1].text)
	}
}

func TestParseDocumentNested(t *testing.T) {
	root, err := parseDocument([]byte(
		"<Device><Voltage><Text>2.0</Text></Voltage></Device>"))
	if err != nil {
		t.Fatalf("parseDocument failed: %v", err)
	}

	voltage := root.child("Voltage")
	if voltage == nil {
		t.Fatal("no Voltage child")
	}
	text := voltage.child("Text")
	if text == nil || text.text != "2.0" {
		t.Fatalf("Text child = %#v", text)
	}
}

func TestParseDocumentMalformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "unclosed tag", doc: "<Device><Name>x</Device>"},
		{name: "empty input", doc: ""},
		{name: "text only", doc: "hello"},
		{name: "multiple roots", doc: "<A></A><B></B>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseDocument([]byte(tt.doc))
			if err == nil {
				t.Fatalf("parseDocument(%q) succeeded, want error", tt.doc)
			}
			if !errors.Is(err, ErrMalformedDocument) {
				t.Errorf("error = %v, want ErrMalformedDocument", err)
			}
		})
	}
}

func TestParseDocumentSkipsCommentsAndDecl(t *testing.T) {
	root, err := parseDocument([]byte(
		"<?xml version=\"1.0\"?><!-- exported --><Device><Name>x</Name></Device>"))
	if err != nil {
		t.Fatalf("parseDocument failed: %v", err)
	}
	if root.name != "Device" {
		t.Errorf("root name = %q, want Device", root.name)
	}
}

func TestChildFirstOccurrence(t *testing.T) {
	root, err := parseDocument([]byte(
		"<Device><Name>first</Name><Name>second</Name></Device>"))
	if err != nil {
		t.Fatalf("parseDocument failed: %v", err)
	}
	if got := root.child("Name").text; got != "first" {
		t.Errorf("child(Name).text = %q, want first", got)
	}
	if root.child("Missing") != nil {
		t.Error("child(Missing) found, want nil")
	}
}

func TestWriteDocumentRoundTrip(t *testing.T) {
	original := &element{
		name: "Device",
		children: []*element{
			{name: "Name", text: "My <odd> & \"quoted\" device"},
			{name: "Power", text: "3.5"},
			{name: "Empty"},
		},
	}

	data, err := writeDocument(original)
	if err != nil {
		t.Fatalf("writeDocument failed: %v", err)
	}

	parsed, err := parseDocument(data)
	if err != nil {
		t.Fatalf("parseDocument failed: %v\ndocument:\n%s", err, data)
	}

	if parsed.name != original.name {
		t.Errorf("root name = %q, want %q", parsed.name, original.name)
	}
	if len(parsed.children) != len(original.children) {
		t.Fatalf("children = %d, want %d", len(parsed.children), len(original.children))
	}
	for idx, want := range original.children {
		got := parsed.children[idx]
		if got.name != want.name || got.text != want.text {
			t.Errorf("child %d = %q %q, want %q %q", idx, got.name, got.text, want.name, want.text)
		}
	}
}

func TestWriteDocumentLeafTextInline(t *testing.T) {
	data, err := writeDocument(&element{
		name:     "Device",
		children: []*element{{name: "Name", text: "MyDevice"}},
	})
	if err != nil {
		t.Fatalf("writeDocument failed: %v", err)
	}
	if !strings.Contains(string(data), "<Name>MyDevice</Name>") {
		t.Errorf("leaf text not inline:\n%s", data)
	}
}
