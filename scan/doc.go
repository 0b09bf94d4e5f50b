// Package scan extracts typed values from text using a compiled template.
//
// Core types:
//   - Span: a [Start, End) byte range in the source text
//   - Resolver: finds placeholder spans left to right by matching separators
//   - Result: the decoded values of one scan, in placeholder order
//   - Scanner: a template bound to options such as a logger
//
// Example usage:
//
//	t := template.MustCompile("temp={%f}C id={%u}")
//
//	res, err := scan.Scan(t, "temp=21.5C id=7", decode.Float64, decode.Uint32)
//	if err != nil {
//	    return err
//	}
//	temp := res.Value(0).Float() // 21.5
//	id := res.Value(1).Uint()    // 7
//
// Typed destinations:
//
//	var (
//	    temp float64
//	    id   uint32
//	)
//	err := scan.Into(t, "temp=21.5C id=7", &temp, &id)
//
// # Boundaries
//
// Each placeholder's value is the text between the literal separators that
// surround it in the template. The search is greedy and forward-only, so a
// value that contains its own closing separator is cut at the first
// occurrence. The literal before the first placeholder is not verified: the
// first value is assumed to start at the same offset as in the template.
//
// # Errors
//
// Calling mistakes (wrong number of kinds, unsupported destinations) match
// ErrUsage and are reported before the source is examined. Decode failures
// and specifier mismatches are returned as *Error, which wraps the decode
// package's sentinels:
//
//	var scanErr *scan.Error
//	if errors.As(err, &scanErr) && errors.Is(err, decode.ErrOverflow) {
//	    log.Printf("placeholder %d overflows", scanErr.Index)
//	}
//
// Text values are substrings of the source and share its memory.
package scan
