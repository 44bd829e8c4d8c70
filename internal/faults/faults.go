// Package faults classifies pipeline failures so the CLI can map each class
// to a distinct exit code.
package faults

import "fmt"

// InputError marks problems with the source images: an unreadable or empty
// input directory, or a file that does not decode.
type InputError struct {
	Err error
}

func (e *InputError) Error() string { return "input: " + e.Err.Error() }
func (e *InputError) Unwrap() error { return e.Err }

// ConfigError marks invalid invocation settings: bad flags, a malformed
// defaults file, or a layout file that violates its constraints.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return "config: " + e.Err.Error() }
func (e *ConfigError) Unwrap() error { return e.Err }

// IOError marks write-side failures when producing the output file.
type IOError struct {
	Err error
}

func (e *IOError) Error() string { return "io: " + e.Err.Error() }
func (e *IOError) Unwrap() error { return e.Err }

func Input(err error) error  { return &InputError{Err: err} }
func Config(err error) error { return &ConfigError{Err: err} }
func IO(err error) error     { return &IOError{Err: err} }

func Inputf(format string, args ...any) error {
	return &InputError{Err: fmt.Errorf(format, args...)}
}

func Configf(format string, args ...any) error {
	return &ConfigError{Err: fmt.Errorf(format, args...)}
}

func IOf(format string, args ...any) error {
	return &IOError{Err: fmt.Errorf(format, args...)}
}
