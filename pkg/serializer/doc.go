// Package serializer writes snapshots and pipeline statistics to JSON
// or YAML, targeting stdout or a file.
//
// Usage:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, snap); err != nil {
//		slog.Error("serialize failed", "error", err)
//	}
package serializer
