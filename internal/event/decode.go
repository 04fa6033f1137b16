package event

import (
	"bufio"
	"encoding/json"
	"io"
)

// DecodePayload decodes an event payload into T. Events from the MemoryBus
// already carry T; events read back from a record stream carry a map and
// go through a JSON round-trip.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}

// ReadRecords parses a JSON lines stream written by a Recorder
func ReadRecords(r io.Reader) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return records, err
		}
		records = append(records, rec)
	}
	return records, scanner.Err()
}
