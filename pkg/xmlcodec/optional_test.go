package xmlcodec

import (
	"errors"
	"testing"
)

func TestDecodeOptional(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    *float32
		wantErr bool
	}{
		{name: "value", doc: "<Discount>25.5</Discount>", want: ptr(25.5)},
		{name: "empty is absent", doc: "<Discount></Discount>", want: nil},
		{name: "whitespace is absent", doc: "<Discount>\n  </Discount>", want: nil},
		{name: "non-numeric", doc: "<Discount>abc</Discount>", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeOptional(mustParse(t, tt.doc))
			if tt.wantErr {
				if err == nil {
					t.Fatal("decodeOptional succeeded, want error")
				}
				if !errors.Is(err, ErrInvalidNumber) {
					t.Errorf("error = %v, want ErrInvalidNumber", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeOptional failed: %v", err)
			}
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("presence = %v, want %v", got != nil, tt.want != nil)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("value = %v, want %v", *got, *tt.want)
			}
		})
	}
}

func TestDecodeOptionalMissingElement(t *testing.T) {
	got, err := decodeOptional(nil)
	if err != nil {
		t.Fatalf("decodeOptional(nil) failed: %v", err)
	}
	if got != nil {
		t.Errorf("decodeOptional(nil) = %v, want absent", *got)
	}
}

func TestEncodeOptional(t *testing.T) {
	absent := encodeOptional("Discount", nil)
	if absent.text != "" || len(absent.children) != 0 {
		t.Errorf("absent optional = %#v, want empty element", absent)
	}

	present := encodeOptional("Discount", ptr(25.5))
	if present.text != "25.5" {
		t.Errorf("present optional text = %q, want 25.5", present.text)
	}
}

func ptr(v float32) *float32 { return &v }
