// Package binder fills request structs from path and query parameters.
//
// Binders have the signature func(*http.Request, any) error so they plug
// straight into handler.WithBinders. Supported field kinds are string
// (including named string types such as i18n.Locale), signed and unsigned
// integers, bool, pointers to those for optional values, and slices.
package binder
