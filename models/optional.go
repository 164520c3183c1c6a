// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// Optional is a portal setting that keeps three states apart:
//
//   - absent: the key is missing, Set is false;
//   - null: the key is present with a null value, Set is true and Value is nil;
//   - value: Set is true and Value points at the value.
//
// Only an absent setting falls through to a lower layer when portals are
// merged; an explicit null overrides like any other value.
type Optional[T any] struct {
	Value *T
	Set   bool
}

// Some returns a set Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: &v, Set: true}
}

// Null returns a set Optional holding an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// IsSet reports whether the key was present, null included.
func (o Optional[T]) IsSet() bool {
	return o.Set
}

// IsNull reports whether the key was present with a null value.
func (o Optional[T]) IsNull() bool {
	return o.Set && o.Value == nil
}

// IsZero reports whether the key is absent. encoding/json uses it for the
// omitzero option.
func (o Optional[T]) IsZero() bool {
	return !o.Set
}

// Get returns the value and whether there is one. Absent and null both
// report false.
func (o Optional[T]) Get() (T, bool) {
	if o.Value == nil {
		var zero T
		return zero, false
	}
	return *o.Value, true
}

// OrZero returns the value, or the zero value of T when absent or null.
func (o Optional[T]) OrZero() T {
	v, _ := o.Get()
	return v
}

// Clone returns a copy of o that does not share its value pointer.
func (o Optional[T]) Clone() Optional[T] {
	return o.CloneWith(func(v T) T { return v })
}

// CloneWith is like Clone but copies the value with clone, for values that
// hold slices or maps.
func (o Optional[T]) CloneWith(clone func(T) T) Optional[T] {
	if o.Value == nil {
		return Optional[T]{Set: o.Set}
	}
	v := clone(*o.Value)
	return Optional[T]{Value: &v, Set: o.Set}
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*o = Null[T]()
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

func isJSONNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
