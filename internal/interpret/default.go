package interpret

import (
	"context"

	"actlog/internal/model"
)

// defaultInterpreter backs the package-level convenience functions used at
// the application edge. Library code should take an explicit *Interpreter.
var defaultInterpreter = New()

// Default returns the process-wide default interpreter.
func Default() *Interpreter {
	return defaultInterpreter
}

// ConfigureClaudeFallback replaces the default interpreter's fallback
// configuration.
func ConfigureClaudeFallback(cfg FallbackConfig) {
	defaultInterpreter.ConfigureClaudeFallback(cfg)
}

// Interpret resolves input through the default interpreter.
func Interpret(ctx context.Context, line *model.Line, input string) model.QueryResult {
	return defaultInterpreter.Interpret(ctx, line, input)
}
