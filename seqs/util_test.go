// Copyright (c) 2025 Visvasity LLC

package seqs

import (
	"math/rand"
	"reflect"
)

// randomize fills the fields of the input struct pointer with random values.
func randomize(input interface{}) {
	v := reflect.ValueOf(input)
	if !v.IsValid() || v.Kind() == reflect.Ptr && v.IsNil() {
		return
	}
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if !v.CanSet() {
		return
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(rand.Int63n(1000))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v.SetUint(uint64(rand.Intn(1000)))

	case reflect.Float32, reflect.Float64:
		v.SetFloat(rand.Float64() * 1000)

	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			randomize(v.Index(i).Addr().Interface())
		}

	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if v.Field(i).CanSet() {
				randomize(v.Field(i).Addr().Interface())
			}
		}
	}
}
