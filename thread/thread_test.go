package thread

import (
	"errors"
	"testing"
)

func TestMainThread(t *testing.T) {
	value := 0
	err := Main(func() error {
		value = 1
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if value != 1 {
		t.Errorf("wrong value %v", value)
	}
}

func TestMainError(t *testing.T) {
	want := errors.New("bootstrap failed")
	if err := Main(func() error { return want }); !errors.Is(err, want) {
		t.Errorf("got %v, want %v", err, want)
	}
}
