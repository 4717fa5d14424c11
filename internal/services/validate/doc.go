// Package validate holds the three field validators, one per argument
// token. Each turns a raw string into a typed value or the field's fixed
// error, with no dependence on the other fields or on evaluation order.
package validate
