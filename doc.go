// Package procvar validates and converts the typed values of process
// variables before they are sent to a process engine.
//
// A form holds a Draft: a declared Type, the raw value the user typed and,
// for Object, a ValueInfo. Two operations drive the form:
//
//   - Validate checks the current (type, value) pair and returns nil or an
//     *Issue with a code, a localized message and structured params.
//   - Coerce runs when the type selector changes and carries the previous
//     value over to the new type instead of discarding it.
//
// CheckSubmittable adds the Object metadata rules used to enable the submit
// action, and ConvertToType keeps the older convert-or-fail API with its
// "Value '<v>' is not of type <T>" errors.
//
// Design policy:
//   - Every function is pure: no I/O and no state between calls.
//   - Grammar checks (JSON, XML, dates, bounded numbers) live in codec/.
//   - Message texts live in i18n/; the CLI lives under cmd/procvar.
//
// Typical usage:
//
//	d := procvar.NewDraft().WithValue(`{"a":"b"}`)
//	d = d.WithType(procvar.TypeJSON)
//	if iss := d.Validate(); iss != nil {
//		fmt.Println(iss.Code, iss.Message)
//	}
package procvar
