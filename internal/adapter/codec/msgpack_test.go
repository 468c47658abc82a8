package codec

import (
	"errors"
	"testing"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"survivalcraft/internal/domain/savegame"
)

func TestEncodeDecodeSave(t *testing.T) {
	in := savegame.Data{
		Version:   savegame.CurrentVersion,
		WorldName: "meadow",
		Timestamp: time.Unix(1700000000, 0).UTC(),
		Seed:      4,
		Width:     2,
		Height:    1,
		PlayerX:   1,
		Health:    80,
		Hunger:    33,
		Inventory: []savegame.SlotRecord{{Item: "axe", Count: 1, Durability: 7}, {}},
		Floors:    []savegame.FloorRecord{{X: 0, Y: 0, Kind: "land"}, {X: 1, Y: 0, Kind: "beach"}},
		Objects:   []savegame.ObjectRecord{{X: 0, Y: 0, Kind: "rock"}},
		Animals:   []savegame.AnimalRecord{{ID: "a", Kind: "cow", X: 1, Health: 12}},
	}
	payload, err := EncodeSave(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := DecodeSave(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.WorldName != in.WorldName || !out.Timestamp.Equal(in.Timestamp) || out.Hunger != 33 {
		t.Fatalf("header mismatch: got=%+v", out)
	}
	if len(out.Floors) != 2 || out.Floors[1].Kind != "beach" {
		t.Fatalf("floors mismatch: %+v", out.Floors)
	}
	if out.Inventory[0].Durability != 7 || out.Animals[0].Health != 12 {
		t.Fatalf("records mismatch: %+v %+v", out.Inventory, out.Animals)
	}
}

func TestPackUsesJSONFieldNames(t *testing.T) {
	payload, err := Pack(savegame.Summary{WorldName: "x", Version: 3})
	if err != nil {
		t.Fatalf("pack: %v", err)
	}
	var raw map[string]any
	if err := msgpack.Unmarshal(payload, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if raw["world_name"] != "x" {
		t.Fatalf("expected json field names, got %v", raw)
	}
}

func TestDecodeSaveRejectsEmpty(t *testing.T) {
	if _, err := DecodeSave(nil); !errors.Is(err, ErrEmptyPayload) {
		t.Fatalf("expected ErrEmptyPayload, got %v", err)
	}
	if _, err := DecodeSave([]byte{0xc1}); err == nil {
		t.Fatalf("expected decode error for garbage")
	}
}
