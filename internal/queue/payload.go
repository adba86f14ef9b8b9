package queue

import (
	"encoding/json"
	"fmt"
)

type payload struct {
	Args []json.RawMessage `json:"args"`
}

func EncodeArgs(args ...any) ([]byte, error) {
	raw := make([]json.RawMessage, 0, len(args))
	for i, arg := range args {
		b, err := json.Marshal(arg)
		if err != nil {
			return nil, fmt.Errorf("fehler beim Serialisieren von Argument %d: %w", i, err)
		}
		raw = append(raw, b)
	}
	return json.Marshal(payload{Args: raw})
}

// DecodeArgs liefert die Rohwerte der Argumente in ihrer Reihenfolge.
func DecodeArgs(data []byte) ([]json.RawMessage, error) {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("fehler beim Deserialisieren der Argumente: %w", err)
	}
	return p.Args, nil
}

// DecodeIntArg erwartet genau ein ganzzahliges Argument.
func DecodeIntArg(data []byte) (int, error) {
	args, err := DecodeArgs(data)
	if err != nil {
		return 0, err
	}
	if len(args) != 1 {
		return 0, fmt.Errorf("genau ein Argument erwartet, %d erhalten", len(args))
	}
	var n int
	if err := json.Unmarshal(args[0], &n); err != nil {
		return 0, fmt.Errorf("argument ist keine ganze Zahl: %w", err)
	}
	return n, nil
}
