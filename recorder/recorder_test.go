package recorder

import (
	"reflect"
	"testing"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

func TestArgs(t *testing.T) {
	opts := Options{Width: 1600, Height: 1200, FPS: 30, OutputFile: "out.mp4"}

	in := inputArgs(opts)
	wantIn := ffmpeg.KwArgs{"f": "rawvideo", "pix_fmt": "rgba", "s": "1600x1200", "r": 30}
	if !reflect.DeepEqual(in, wantIn) {
		t.Errorf("input args = %v, want %v", in, wantIn)
	}
	if out := outputArgs(opts); out["vf"] != "vflip" {
		t.Errorf("frames must be flipped, got %v", out)
	}
}

func TestStartInvalidSize(t *testing.T) {
	for _, opts := range []Options{{Width: 0, Height: 10}, {Width: 10, Height: -1}} {
		if _, err := Start(opts, nil); err == nil {
			t.Errorf("Start(%+v) should fail", opts)
		}
	}
}
