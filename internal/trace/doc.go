// Package trace records what an llvmcc run did: which command ran, which
// headers were read, which codes and names were resolved.
//
// # Usage
//
// Tracing is off unless requested:
//
//	llvmcc check --trace=- --trace-level=entry header.h
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: failures only
//   - LevelCommand: driver and command boundaries
//   - LevelEntry: every resolved table entry and header row
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeCommand, "check", 0)
//	defer span.End("")
package trace
