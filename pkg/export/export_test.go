package export

import (
	"bytes"
	"testing"

	"github.com/gasin/seiti/pkg/board"
)

func TestMarshalUnmarshalStateRoundTrips(t *testing.T) {
	state := board.NewState(42)
	state.Stones[board.Idx(3, 4)] = byte(board.Black)
	state.Territory[board.Idx(5, 5)] = byte(board.White)

	data, err := MarshalState(state)
	if err != nil {
		t.Fatalf("MarshalState: %v", err)
	}

	got, err := UnmarshalState(data)
	if err != nil {
		t.Fatalf("UnmarshalState: %v", err)
	}
	if got.Seed != state.Seed || got.Size != state.Size {
		t.Fatalf("round trip lost Seed/Size: got %+v", got)
	}
	if got.Stones[board.Idx(3, 4)] != byte(board.Black) {
		t.Error("round trip lost a stone")
	}
	if got.Territory[board.Idx(5, 5)] != byte(board.White) {
		t.Error("round trip lost a territory cell")
	}
}

func TestUnmarshalStateRejectsInvalidJSON(t *testing.T) {
	if _, err := UnmarshalState([]byte("not json")); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}

func TestMarshalLevelResultDefaultsNilMovesToEmptyArray(t *testing.T) {
	data, err := MarshalLevelResult(board.NewState(1), nil)
	if err != nil {
		t.Fatalf("MarshalLevelResult: %v", err)
	}
	if !bytes.Contains(data, []byte(`"moves": []`)) {
		t.Errorf("expected moves to serialize as an empty array, got: %s", data)
	}
}

func TestExportSVGRejectsMalformedState(t *testing.T) {
	bad := board.State{Size: 9, Stones: make([]byte, 81), Territory: make([]byte, 81)}
	if _, err := ExportSVG(bad, DefaultSVGOptions()); err == nil {
		t.Fatal("expected an error for a malformed board size")
	}
}

func TestExportSVGProducesWellFormedDocument(t *testing.T) {
	state := board.NewState(1)
	state.Stones[board.Idx(0, 0)] = byte(board.Black)
	state.Stones[board.Idx(18, 18)] = byte(board.White)
	state.Territory[board.Idx(5, 5)] = byte(board.Black)

	data, err := ExportSVG(state, DefaultSVGOptions())
	if err != nil {
		t.Fatalf("ExportSVG: %v", err)
	}
	if !bytes.Contains(data, []byte("<svg")) || !bytes.Contains(data, []byte("</svg>")) {
		t.Error("output is not a well-formed SVG document")
	}
	if !bytes.Contains(data, []byte("<circle")) {
		t.Error("expected at least one stone circle in the output")
	}
}

func TestExportSVGAppliesDefaultsForZeroOptions(t *testing.T) {
	state := board.NewState(1)
	_, err := ExportSVG(state, SVGOptions{})
	if err != nil {
		t.Fatalf("ExportSVG with zero-value options: %v", err)
	}
}
