package codec

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"survivalcraft/internal/domain/savegame"
)

var ErrEmptyPayload = errors.New("empty save payload")

// Pack encodes v to msgpack using its json field names.
func Pack(v any) ([]byte, error) {
	var out bytes.Buffer
	enc := msgpack.NewEncoder(&out)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func Unpack(in []byte, v any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(in))
	dec.SetCustomStructTag("json")
	return dec.Decode(v)
}

func EncodeSave(d savegame.Data) ([]byte, error) {
	b, err := Pack(d)
	if err != nil {
		return nil, fmt.Errorf("encode save %q: %w", d.WorldName, err)
	}
	return b, nil
}

func DecodeSave(payload []byte) (savegame.Data, error) {
	if len(payload) == 0 {
		return savegame.Data{}, ErrEmptyPayload
	}
	var d savegame.Data
	if err := Unpack(payload, &d); err != nil {
		return savegame.Data{}, fmt.Errorf("decode save: %w", err)
	}
	return d, nil
}
