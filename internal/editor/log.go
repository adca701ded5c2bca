package editor

import "go.uber.org/zap"

// zapErrorFields builds the structured fields for the fatal/recoverable
// taxonomy in spec.md §7. Kept separate from terminal.go/editor.go so the
// logging shape changes in one place.
func zapErrorFields(reason string, err error) []zap.Field {
	fields := []zap.Field{zap.String("reason", reason)}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	return fields
}
