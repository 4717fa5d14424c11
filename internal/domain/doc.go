// Package domain defines the raw, validated and derived value types shared
// by the validators, the composer and the CLI, together with the fixed
// error catalog and the Outcome sum type that carries either a value or an
// ordered set of field errors.
package domain
